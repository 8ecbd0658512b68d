package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/biosecret/taskflow/models"
)

type Type string

const (
	TaskCreated Type = "created"
	TaskUpdated Type = "updated"
	TaskToggled Type = "toggled"
	TaskDeleted Type = "deleted"
)

// TaskEvent báo cho giao diện biết danh sách task vừa thay đổi
type TaskEvent struct {
	Type   Type         `json:"type"`
	TaskID string       `json:"taskId"`
	UserID string       `json:"userId"`
	Task   *models.Task `json:"task,omitempty"`
	At     time.Time    `json:"at"`
}

// Publisher receives every task event. Publishing is best-effort and never
// fails the mutation that caused it.
type Publisher interface {
	Publish(ev TaskEvent)
}

// Multi fans one event out to several publishers.
type Multi []Publisher

func (m Multi) Publish(ev TaskEvent) {
	for _, p := range m {
		if p != nil {
			p.Publish(ev)
		}
	}
}

type session struct {
	userID       string
	stateChannel chan TaskEvent
}

// Broker giữ danh sách các session đang nghe sự kiện
type Broker struct {
	mu       sync.Mutex
	sessions []*session
	buffer   int
}

func NewBroker() *Broker {
	return &Broker{buffer: 16}
}

// Subscribe registers a listener for userID's events. The returned cancel
// func must be called once the listener goes away.
func (b *Broker) Subscribe(userID string) (<-chan TaskEvent, func()) {
	s := &session{userID: userID, stateChannel: make(chan TaskEvent, b.buffer)}

	b.mu.Lock()
	b.sessions = append(b.sessions, s)
	b.mu.Unlock()

	var once sync.Once
	return s.stateChannel, func() {
		once.Do(func() { b.removeSession(s) })
	}
}

func (b *Broker) removeSession(s *session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := slices.Index(b.sessions, s)
	if idx != -1 {
		b.sessions[idx] = nil
		b.sessions = slices.Delete(b.sessions, idx, idx+1)
		close(s.stateChannel)
	}
}

// Publish delivers ev to the owner's sessions. A session whose buffer is
// full misses the event.
func (b *Broker) Publish(ev TaskEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sessions {
		if s.userID != ev.UserID {
			continue
		}
		select {
		case s.stateChannel <- ev:
		default:
		}
	}
}

// Subscribers returns the number of live sessions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// FormatSSE frames data as one server-sent event.
func FormatSSE(eventType string, data any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	m := map[string]any{
		"data": data,
	}

	if err := enc.Encode(m); err != nil {
		return "", err
	}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("event: %s\n", eventType))
	sb.WriteString(fmt.Sprintf("retry: %d\n", 15000))
	sb.WriteString(fmt.Sprintf("data: %v\n\n", strings.TrimSuffix(buf.String(), "\n")))

	return sb.String(), nil
}
