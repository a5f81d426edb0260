// Package task defines the todo model shared by the stores and every surface.
package task

import (
	"time"
)

// DefaultCategory is used when a todo is created without a category.
const DefaultCategory = "Uncategorized"

// Todo is a single task. Duration is in hours and is always positive once the
// todo has been through the store's defaulting.
type Todo struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Duration   float64    `json:"duration"`
	Priority   Priority   `json:"priority"`
	Completed  bool       `json:"completed"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Category   string     `json:"category,omitempty"`
	Recurrence Recurrence `json:"recurrence,omitempty"`
	ProjectID  int64      `json:"projectId"`
}

// New builds a todo with the given title and the model-level defaults filled
// in. The store assigns the id and project on create.
func New(title string) Todo {
	return Todo{
		Title:      title,
		Duration:   1,
		Priority:   PriorityMedium,
		Category:   DefaultCategory,
		Recurrence: RecurrenceNone,
	}
}

// CategoryOrDefault normalizes the category for grouping.
func (t Todo) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// Recurring reports whether placing this todo expands to a series.
func (t Todo) Recurring() bool {
	return t.Recurrence != "" && t.Recurrence != RecurrenceNone
}
