package utils

import (
	"time"

	"github.com/google/uuid"
)

// GenerateTaskID tạo ID dựa trên thời điểm tạo (UUIDv7).
// The 48-bit millisecond prefix is the creation time; the random tail keeps
// ids distinct when several tasks are created within the same millisecond.
func GenerateTaskID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ISOTimestamp formats t the way createdAt is persisted: UTC, millisecond
// precision, Z suffix.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
