package models

import (
	"errors"
	"strings"
)

// Priority của một task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ErrInvalidPriority = errors.New("priority must be one of low, medium, high")

// ParsePriority accepts the three known levels; empty means medium.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", ErrInvalidPriority
	}
}

// Task là cấu trúc dữ liệu của một task
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Completed   bool     `json:"completed" yaml:"completed"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	Priority    Priority `json:"priority" yaml:"priority"`
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	UserID      string   `json:"userId" yaml:"userId"`
}

// Normalize fills defaults for records written before priority, dueDate
// and category existed.
func (t Task) Normalize() Task {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	t.DueDate = strings.TrimSpace(t.DueDate)
	t.Category = strings.TrimSpace(t.Category)
	return t
}

// Filter chọn task hiển thị theo trạng thái
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

var ErrInvalidFilter = errors.New("filter must be one of all, completed, pending")

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterCompleted, FilterPending:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Counts feeds the filter tab badges.
type Counts struct {
	All       int `json:"all"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
