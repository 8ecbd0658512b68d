// Package viewmodel derives what the dashboard shows from the in-memory
// task list. Everything here is pure.
package viewmodel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/biosecret/taskflow/models"
)

// Filter returns the tasks that pass both the filter mode and the search
// term, in input order.
func Filter(tasks []models.Task, mode models.Filter, search string) []models.Task {
	term := strings.ToLower(search)
	result := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesFilter(t, mode) && matchesSearch(t, term) {
			result = append(result, t)
		}
	}
	return result
}

func matchesFilter(t models.Task, mode models.Filter) bool {
	switch mode {
	case models.FilterCompleted:
		return t.Completed
	case models.FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// matchesSearch expects term already lower-cased.
func matchesSearch(t models.Task, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	return t.Category != "" && strings.Contains(strings.ToLower(t.Category), term)
}

// Count tallies the unfiltered list.
func Count(tasks []models.Task) models.Counts {
	c := models.Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.All - c.Completed
	return c
}

// Item is a visible task plus its due-date decoration.
type Item struct {
	models.Task
	DueStatus string `json:"dueStatus,omitempty"`
	Overdue   bool   `json:"overdue"`
}

type EmptyState struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// View is everything one render of the dashboard needs.
type View struct {
	Tasks   []Item        `json:"tasks"`
	Counts  models.Counts `json:"counts"`
	Filter  models.Filter `json:"filter"`
	Search  string        `json:"search"`
	Summary string        `json:"summary"`
	Empty   *EmptyState   `json:"empty,omitempty"`
}

func Build(tasks []models.Task, mode models.Filter, search string, now time.Time) View {
	if mode == "" {
		mode = models.FilterAll
	}
	visible := Filter(tasks, mode, search)
	v := View{
		Tasks:  make([]Item, 0, len(visible)),
		Counts: Count(tasks),
		Filter: mode,
		Search: search,
	}
	for _, t := range visible {
		v.Tasks = append(v.Tasks, Item{
			Task:      t,
			DueStatus: DueStatus(t, now),
			Overdue:   IsOverdue(t, now),
		})
	}
	v.Summary = Summary(v.Counts)
	if len(visible) == 0 {
		e := Empty(mode, search)
		v.Empty = &e
	}
	return v
}

// Summary is the greeting line under the user's name.
func Summary(c models.Counts) string {
	if c.Pending == 0 {
		return "All caught up! Great work!"
	}
	if c.Pending == 1 {
		return "You have 1 pending task"
	}
	return fmt.Sprintf("You have %d pending tasks", c.Pending)
}

func Empty(mode models.Filter, search string) EmptyState {
	switch {
	case search != "":
		return EmptyState{
			Title:   "No matching tasks",
			Message: fmt.Sprintf("No tasks match %q. Try a different search term.", search),
		}
	case mode == models.FilterAll:
		return EmptyState{
			Title:   "No tasks yet",
			Message: "Get started by adding your first task!",
		}
	default:
		return EmptyState{
			Title:   fmt.Sprintf("No %s tasks", mode),
			Message: fmt.Sprintf("You don't have any %s tasks right now.", mode),
		}
	}
}

const dateLayout = "2006-01-02"

func parseDue(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DueStatus labels a due date relative to now. Due dates are midnight UTC
// and the day difference is rounded up.
func DueStatus(t models.Task, now time.Time) string {
	due, ok := parseDue(t.DueDate)
	if !ok {
		return ""
	}
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days <= 7:
		return fmt.Sprintf("Due in %d days", days)
	default:
		return due.Format("Jan 2, 2006")
	}
}

// IsOverdue is true for pending tasks whose due date has passed.
func IsOverdue(t models.Task, now time.Time) bool {
	due, ok := parseDue(t.DueDate)
	return ok && !t.Completed && due.Before(now)
}
