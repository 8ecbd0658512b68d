package dashboard

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/biosecret/taskflow/database"
	"github.com/biosecret/taskflow/events"
	"github.com/biosecret/taskflow/models"
	"github.com/biosecret/taskflow/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []events.TaskEvent
}

func (r *recorder) Publish(ev events.TaskEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []events.Type{}
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func setup(t *testing.T) (*Dashboard, *store.Store, *recorder) {
	t.Helper()
	s := store.New(database.NewMemory())
	rec := &recorder{}
	d := New(s, rec)
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return d, s, rec
}

func loggedIn(t *testing.T, name string) (*Dashboard, *store.Store, *recorder) {
	t.Helper()
	d, s, rec := setup(t)
	require.NoError(t, d.Login(name))
	return d, s, rec
}

func TestLogin(t *testing.T) {
	d, s, _ := setup(t)

	assert.ErrorIs(t, d.Login("   "), ErrEmptyUsername)
	_, ok := s.GetUser()
	assert.False(t, ok, "empty username must not reach the store")

	require.NoError(t, d.Login("  alice  "))
	name, ok := d.User()
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
	stored, _ := s.GetUser()
	assert.Equal(t, "alice", stored)
}

func TestLogout_KeepsTasks(t *testing.T) {
	d, s, _ := loggedIn(t, "alice")
	_, err := d.AddTask(TaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, d.Logout())

	_, ok := d.User()
	assert.False(t, ok)
	_, err = d.Tasks()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Len(t, s.GetUserTasks("alice"), 1)

	require.NoError(t, d.Login("alice"))
	tasks, err := d.Tasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestRestore(t *testing.T) {
	kv := database.NewMemory()
	first := New(store.New(kv), nil)
	require.NoError(t, first.Login("alice"))
	_, err := first.AddTask(TaskInput{Title: "persisted"})
	require.NoError(t, err)

	second := New(store.New(kv), nil)
	second.Restore()

	name, ok := second.User()
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
	tasks, err := second.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "persisted", tasks[0].Title)
}

func TestRestore_NoSession(t *testing.T) {
	d, _, _ := setup(t)
	d.Restore()
	_, ok := d.User()
	assert.False(t, ok)
}

func TestAddTask(t *testing.T) {
	d, s, rec := loggedIn(t, "alice")

	task, err := d.AddTask(TaskInput{
		Title:       "  Buy milk ",
		Description: " 2 litres ",
		Priority:    "high",
		DueDate:     "2025-03-10",
		Category:    "  ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 litres", task.Description)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, "2025-03-10", task.DueDate)
	assert.Empty(t, task.Category, "blank category is stored as absent")
	assert.False(t, task.Completed)
	assert.Equal(t, "alice", task.UserID)
	assert.Equal(t, "2025-03-01T09:00:01.000Z", task.CreatedAt)

	stored := s.GetUserTasks("alice")
	require.Len(t, stored, 1)
	assert.Equal(t, task, stored[0])
	assert.Equal(t, []events.Type{events.TaskCreated}, rec.types())
}

func TestAddTask_Validation(t *testing.T) {
	d, s, rec := loggedIn(t, "alice")

	tests := []struct {
		name string
		in   TaskInput
		want error
	}{
		{name: "empty title", in: TaskInput{Title: "  "}, want: ErrEmptyTitle},
		{name: "bad priority", in: TaskInput{Title: "x", Priority: "urgent"}, want: ErrInvalidPriority},
		{name: "bad due date", in: TaskInput{Title: "x", DueDate: "next friday"}, want: ErrInvalidDueDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.AddTask(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, s.GetUserTasks("alice"))
	assert.Empty(t, rec.types())
}

func TestAddTask_DefaultPriority(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	task, err := d.AddTask(TaskInput{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestAddTask_RequiresSession(t *testing.T) {
	d, _, _ := setup(t)
	_, err := d.AddTask(TaskInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAddTask_UniqueIDs(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	d.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		task, err := d.AddTask(TaskInput{Title: fmt.Sprintf("task %d", i)})
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestAddTask_RetriesTakenID(t *testing.T) {
	d, s, _ := loggedIn(t, "alice")
	require.NoError(t, s.SaveUserTask(models.Task{ID: "taken", Title: "bob's"}, "bob"))

	ids := []string{"taken", "fresh"}
	d.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}

	task, err := d.AddTask(TaskInput{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", task.ID)
}

func TestAddTask_GivesUpAfterThreeCollisions(t *testing.T) {
	d, s, _ := loggedIn(t, "alice")
	require.NoError(t, s.SaveUserTask(models.Task{ID: "taken", Title: "x"}, "bob"))
	d.newID = func() (string, error) { return "taken", nil }

	_, err := d.AddTask(TaskInput{Title: "x"})
	assert.Error(t, err)
}

func TestAddTask_IDError(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	boom := errors.New("entropy exhausted")
	d.newID = func() (string, error) { return "", boom }

	_, err := d.AddTask(TaskInput{Title: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestTasks_NewestFirst(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	for _, title := range []string{"first", "second", "third"} {
		_, err := d.AddTask(TaskInput{Title: title})
		require.NoError(t, err)
	}

	tasks, err := d.Tasks()
	require.NoError(t, err)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "first", tasks[2].Title)

	// the store appends, reload must sort again
	require.NoError(t, d.Login("alice"))
	tasks, err = d.Tasks()
	require.NoError(t, err)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestUpdateTask(t *testing.T) {
	d, s, rec := loggedIn(t, "alice")
	orig, err := d.AddTask(TaskInput{Title: "Buy milk", Category: "Home"})
	require.NoError(t, err)
	_, err = d.ToggleComplete(orig.ID)
	require.NoError(t, err)

	updated, err := d.UpdateTask(orig.ID, TaskInput{Title: "Buy oat milk", Priority: "low"})
	require.NoError(t, err)

	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.Equal(t, orig.UserID, updated.UserID)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, models.PriorityLow, updated.Priority)
	assert.Empty(t, updated.Category)
	assert.True(t, updated.Completed, "editing keeps completion")

	stored := s.GetUserTasks("alice")
	require.Len(t, stored, 1)
	assert.Equal(t, updated, stored[0])
	assert.Equal(t, []events.Type{events.TaskCreated, events.TaskToggled, events.TaskUpdated}, rec.types())
}

func TestUpdateTask_Errors(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	task, err := d.AddTask(TaskInput{Title: "x"})
	require.NoError(t, err)

	_, err = d.UpdateTask("nope", TaskInput{Title: "y"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = d.UpdateTask(task.ID, TaskInput{Title: ""})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	tasks, _ := d.Tasks()
	assert.Equal(t, "x", tasks[0].Title)
}

func TestToggleComplete(t *testing.T) {
	d, s, _ := loggedIn(t, "alice")
	task, err := d.AddTask(TaskInput{Title: "x"})
	require.NoError(t, err)

	toggled, err := d.ToggleComplete(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, s.GetUserTasks("alice")[0].Completed)

	toggled, err = d.ToggleComplete(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	got, err := d.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, toggled, got)

	_, err = d.ToggleComplete("nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	d, s, rec := loggedIn(t, "alice")
	keep, err := d.AddTask(TaskInput{Title: "keep"})
	require.NoError(t, err)
	drop, err := d.AddTask(TaskInput{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, d.DeleteTask(drop.ID))

	tasks, _ := d.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
	assert.Len(t, s.GetUserTasks("alice"), 1)

	assert.ErrorIs(t, d.DeleteTask(drop.ID), ErrTaskNotFound)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, events.TaskDeleted, last.Type)
	assert.Equal(t, drop.ID, last.TaskID)
	assert.Nil(t, last.Task)
}

func TestUsersAreIsolated(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	aliceTask, err := d.AddTask(TaskInput{Title: "alice only"})
	require.NoError(t, err)

	require.NoError(t, d.Login("bob"))
	tasks, err := d.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, d.DeleteTask(aliceTask.ID), ErrTaskNotFound)
	_, err = d.ToggleComplete(aliceTask.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestView(t *testing.T) {
	d, _, _ := loggedIn(t, "alice")
	milk, err := d.AddTask(TaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	rent, err := d.AddTask(TaskInput{Title: "Pay rent"})
	require.NoError(t, err)
	_, err = d.ToggleComplete(rent.ID)
	require.NoError(t, err)

	v, err := d.View(models.FilterPending, "")
	require.NoError(t, err)
	require.Len(t, v.Tasks, 1)
	assert.Equal(t, milk.ID, v.Tasks[0].ID)
	assert.Equal(t, models.Counts{All: 2, Completed: 1, Pending: 1}, v.Counts)
	assert.Equal(t, "You have 1 pending task", v.Summary)

	require.NoError(t, d.Logout())
	_, err = d.View(models.FilterAll, "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDarkMode(t *testing.T) {
	d, _, _ := setup(t)
	assert.False(t, d.DarkMode())

	on, err := d.ToggleDarkMode()
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, d.DarkMode())

	require.NoError(t, d.SetDarkMode(false))
	assert.False(t, d.DarkMode())
}
