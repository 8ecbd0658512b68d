// Package dashboard holds the logged-in user's task list in memory and
// turns user actions into Store writes and task events.
package dashboard

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/biosecret/taskflow/events"
	"github.com/biosecret/taskflow/models"
	"github.com/biosecret/taskflow/store"
	"github.com/biosecret/taskflow/utils"
	"github.com/biosecret/taskflow/viewmodel"
)

var (
	ErrNoSession       = errors.New("no user is logged in")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPriority = models.ErrInvalidPriority
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrTaskNotFound    = errors.New("task not found")
)

// TaskInput is what the task form submits.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Category    string `json:"category"`
}

// fields validates and trims the input.
func (in TaskInput) fields() (TaskInput, models.Priority, error) {
	out := TaskInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		DueDate:     strings.TrimSpace(in.DueDate),
		Category:    strings.TrimSpace(in.Category),
	}
	if out.Title == "" {
		return out, "", ErrEmptyTitle
	}
	p, err := models.ParsePriority(in.Priority)
	if err != nil {
		return out, "", err
	}
	if out.DueDate != "" {
		if _, err := time.Parse("2006-01-02", out.DueDate); err != nil {
			return out, "", ErrInvalidDueDate
		}
	}
	return out, p, nil
}

type Dashboard struct {
	mu        sync.Mutex
	store     *store.Store
	publisher events.Publisher
	now       func() time.Time
	newID     func() (string, error)

	user  string
	tasks []models.Task
}

// New creates a dashboard; publisher may be nil.
func New(s *store.Store, publisher events.Publisher) *Dashboard {
	return &Dashboard{
		store:     s,
		publisher: publisher,
		now:       time.Now,
		newID:     utils.GenerateTaskID,
	}
}

// Restore picks up the session saved by a previous run.
func (d *Dashboard) Restore() {
	d.mu.Lock()
	defer d.mu.Unlock()

	name, ok := d.store.GetUser()
	if !ok {
		d.user, d.tasks = "", nil
		return
	}
	d.load(name)
}

func (d *Dashboard) load(name string) {
	tasks := d.store.GetUserTasks(name)
	// createdAt is fixed-width ISO-8601, so string order is time order.
	// Ids break ties within one millisecond.
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		if c := strings.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	d.user = name
	d.tasks = tasks
}

func (d *Dashboard) Login(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUsername
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.SaveUser(name); err != nil {
		return err
	}
	d.load(name)
	log.Printf("[dashboard] %s logged in with %d tasks", name, len(d.tasks))
	return nil
}

func (d *Dashboard) Logout() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.ClearUser(); err != nil {
		return err
	}
	d.user, d.tasks = "", nil
	return nil
}

func (d *Dashboard) User() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.user, d.user != ""
}

// Tasks returns a copy of the in-memory list, newest first.
func (d *Dashboard) Tasks() ([]models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.user == "" {
		return nil, ErrNoSession
	}
	return slices.Clone(d.tasks), nil
}

// View renders the current list through the view model.
func (d *Dashboard) View(filter models.Filter, search string) (viewmodel.View, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.user == "" {
		return viewmodel.View{}, ErrNoSession
	}
	return viewmodel.Build(d.tasks, filter, search, d.now()), nil
}

// generateID thử tạo ID tối đa 3 lần nếu ID bị trùng
func (d *Dashboard) generateID() (string, error) {
	for i := 0; i < 3; i++ {
		id, err := d.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate ID: %w", err)
		}
		if !d.store.TaskExists(id) {
			return id, nil
		}
	}
	return "", errors.New("failed to generate a unique ID")
}

func (d *Dashboard) AddTask(in TaskInput) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user == "" {
		return models.Task{}, ErrNoSession
	}
	f, priority, err := in.fields()
	if err != nil {
		return models.Task{}, err
	}
	id, err := d.generateID()
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		CreatedAt:   utils.ISOTimestamp(d.now()),
		Priority:    priority,
		DueDate:     f.DueDate,
		Category:    f.Category,
		UserID:      d.user,
	}
	if err := d.store.SaveUserTask(task, d.user); err != nil {
		return models.Task{}, err
	}
	d.tasks = append([]models.Task{task}, d.tasks...)
	d.publish(events.TaskCreated, task)
	return task, nil
}

func (d *Dashboard) index(id string) int {
	return slices.IndexFunc(d.tasks, func(t models.Task) bool { return t.ID == id })
}

func (d *Dashboard) Task(id string) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user == "" {
		return models.Task{}, ErrNoSession
	}
	i := d.index(id)
	if i < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return d.tasks[i], nil
}

// UpdateTask replaces the mutable fields of a task; completion is kept.
func (d *Dashboard) UpdateTask(id string, in TaskInput) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user == "" {
		return models.Task{}, ErrNoSession
	}
	i := d.index(id)
	if i < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	f, priority, err := in.fields()
	if err != nil {
		return models.Task{}, err
	}

	task := d.tasks[i]
	task.Title = f.Title
	task.Description = f.Description
	task.Priority = priority
	task.DueDate = f.DueDate
	task.Category = f.Category

	if err := d.store.SaveUserTask(task, d.user); err != nil {
		return models.Task{}, err
	}
	d.tasks[i] = task
	d.publish(events.TaskUpdated, task)
	return task, nil
}

func (d *Dashboard) ToggleComplete(id string) (models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user == "" {
		return models.Task{}, ErrNoSession
	}
	i := d.index(id)
	if i < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	task := d.tasks[i]
	task.Completed = !task.Completed
	if err := d.store.SaveUserTask(task, d.user); err != nil {
		return models.Task{}, err
	}
	d.tasks[i] = task
	d.publish(events.TaskToggled, task)
	return task, nil
}

func (d *Dashboard) DeleteTask(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.user == "" {
		return ErrNoSession
	}
	i := d.index(id)
	if i < 0 {
		return ErrTaskNotFound
	}

	if err := d.store.DeleteUserTask(id, d.user); err != nil {
		return err
	}
	task := d.tasks[i]
	d.tasks = slices.Delete(d.tasks, i, i+1)
	d.publish(events.TaskDeleted, task)
	return nil
}

func (d *Dashboard) DarkMode() bool {
	return d.store.GetDarkMode()
}

func (d *Dashboard) SetDarkMode(on bool) error {
	return d.store.SetDarkMode(on)
}

// ToggleDarkMode flips the theme and returns the new value.
func (d *Dashboard) ToggleDarkMode() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	on := !d.store.GetDarkMode()
	if err := d.store.SetDarkMode(on); err != nil {
		return !on, err
	}
	return on, nil
}

func (d *Dashboard) publish(typ events.Type, task models.Task) {
	if d.publisher == nil {
		return
	}
	ev := events.TaskEvent{
		Type:   typ,
		TaskID: task.ID,
		UserID: task.UserID,
		At:     d.now(),
	}
	if typ != events.TaskDeleted {
		ev.Task = &task
	}
	d.publisher.Publish(ev)
}
