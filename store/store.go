// Package store persists the session user, the task collection of every
// user on this profile, and the theme preference on top of a key-value
// medium.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/biosecret/taskflow/database"
	"github.com/biosecret/taskflow/models"
)

const (
	UserKey     = "taskflow_user"
	TasksKey    = "taskflow_tasks"
	DarkModeKey = "taskflow_darkmode"
)

// Store is safe for concurrent use within one process. Every task operation
// reads the whole collection, changes it and writes it back before
// returning; there is no locking across processes.
type Store struct {
	mu sync.Mutex
	kv database.Storage
}

func New(kv database.Storage) *Store {
	return &Store{kv: kv}
}

// SaveUser persists name as the active session user.
func (s *Store) SaveUser(name string) error {
	if err := s.kv.Set(UserKey, name); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUser returns the session user; unreadable storage counts as logged out.
func (s *Store) GetUser() (string, bool) {
	name, ok, err := s.kv.Get(UserKey)
	if err != nil {
		log.Printf("[store] Error reading session user: %v", err)
		return "", false
	}
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// ClearUser logs out. Tasks are kept.
func (s *Store) ClearUser() error {
	if err := s.kv.Delete(UserKey); err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}
	return nil
}

// loadAll decodes the full collection. Missing or malformed data yields an
// empty collection; a single malformed record is skipped.
func (s *Store) loadAll() []models.Task {
	raw, ok, err := s.kv.Get(TasksKey)
	if err != nil {
		log.Printf("[store] Error reading tasks: %v", err)
		return []models.Task{}
	}
	if !ok || raw == "" {
		return []models.Task{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("[store] Error parsing tasks from storage: %v", err)
		return []models.Task{}
	}

	tasks := make([]models.Task, 0, len(records))
	for i, rec := range records {
		var t models.Task
		if err := json.Unmarshal(rec, &t); err != nil {
			log.Printf("[store] Skipping unreadable task #%d: %v", i, err)
			continue
		}
		tasks = append(tasks, t.Normalize())
	}
	return tasks
}

func (s *Store) saveAll(tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.kv.Set(TasksKey, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// GetUserTasks returns userID's tasks in storage order, with defaults
// applied to fields older records lack.
func (s *Store) GetUserTasks(userID string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Task{}
	for _, t := range s.loadAll() {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result
}

// TaskExists reports whether any user owns a task with this id.
func (s *Store) TaskExists(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.loadAll() {
		if t.ID == taskID {
			return true
		}
	}
	return false
}

// SaveUserTask upserts task by id. The stored copy always belongs to
// userID, whatever task.UserID said.
func (s *Store) SaveUserTask(task models.Task, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.UserID = userID
	tasks := s.loadAll()

	replaced := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		tasks = append(tasks, task)
	}
	return s.saveAll(tasks)
}

// DeleteUserTask removes the task with this id owned by userID. A task with
// the same id under another user is left alone. Missing tasks are a no-op.
func (s *Store) DeleteUserTask(taskID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadAll()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID == taskID && t.UserID == userID {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(tasks) {
		return nil
	}
	return s.saveAll(kept)
}

// ClearUserTasks removes every task owned by userID.
func (s *Store) ClearUserTasks(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadAll()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return nil
	}
	return s.saveAll(kept)
}

// GetDarkMode is true only when the stored preference is exactly "true".
func (s *Store) GetDarkMode() bool {
	v, ok, err := s.kv.Get(DarkModeKey)
	if err != nil {
		log.Printf("[store] Error reading dark mode preference: %v", err)
		return false
	}
	return ok && v == "true"
}

func (s *Store) SetDarkMode(on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	if err := s.kv.Set(DarkModeKey, v); err != nil {
		return fmt.Errorf("failed to save dark mode preference: %w", err)
	}
	return nil
}
