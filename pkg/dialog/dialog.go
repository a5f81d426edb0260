// Package dialog holds the single process-wide modal slot. Exactly one
// dialog is ever open; a second open replaces the first (last write wins,
// no stacking).
package dialog

import (
	"context"
	"sync"
	"time"

	"github.com/spina95/time-blocking/pkg/watch"
)

// Kind tags the payload variant carried by an open dialog.
type Kind string

const (
	KindTask    Kind = "task"
	KindConfirm Kind = "confirm"
	KindProject Kind = "project"
)

// TaskPayload pre-fills the task form. ID is zero for creation and set for
// edits. Placement carries the selected calendar span, when the dialog was
// opened from a range selection.
type TaskPayload struct {
	ID        int64
	Title     string
	Duration  float64
	Priority  string
	Deadline  *time.Time
	Category  string
	Placement *Placement
}

// Placement is the calendar span a new task should be scheduled into.
type Placement struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// ConfirmPayload asks the user to confirm a destructive action. Exactly one
// of TodoID or EventID is set.
type ConfirmPayload struct {
	Message string
	TodoID  int64
	EventID string
}

// ProjectPayload pre-fills the project form.
type ProjectPayload struct {
	Name  string
	Icon  string
	Color string
}

// State is the whole dialog slot, replaced wholesale on every open/close.
// The pointer matching Kind is set; the others are nil.
type State struct {
	Visible bool
	Title   string
	Kind    Kind
	Task    *TaskPayload
	Confirm *ConfirmPayload
	Project *ProjectPayload
}

// Coordinator owns the dialog slot.
type Coordinator struct {
	mu    sync.Mutex
	state State
	feed  watch.Feed[State]
}

// NewCoordinator returns a coordinator in the closed state.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// State returns the current slot.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Watch streams every slot replacement until ctx is done.
func (c *Coordinator) Watch(ctx context.Context) <-chan State {
	return c.feed.Subscribe(ctx)
}

// OpenTask shows the task form.
func (c *Coordinator) OpenTask(title string, payload TaskPayload) {
	c.replace(State{Visible: true, Title: title, Kind: KindTask, Task: &payload})
}

// OpenConfirm shows a confirmation prompt.
func (c *Coordinator) OpenConfirm(title string, payload ConfirmPayload) {
	c.replace(State{Visible: true, Title: title, Kind: KindConfirm, Confirm: &payload})
}

// OpenProject shows the project form.
func (c *Coordinator) OpenProject(title string, payload ProjectPayload) {
	c.replace(State{Visible: true, Title: title, Kind: KindProject, Project: &payload})
}

// Close resets the slot to the canonical closed state.
func (c *Coordinator) Close() {
	c.replace(State{})
}

// replace publishes under mu so watchers observe slot states in replace
// order.
func (c *Coordinator) replace(next State) {
	c.mu.Lock()
	c.state = next
	c.feed.Publish(next)
	c.mu.Unlock()
}
