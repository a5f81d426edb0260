package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/recur"
	"github.com/spina95/time-blocking/pkg/task"
	"github.com/spina95/time-blocking/pkg/watch"
)

// TodoDefaults are the values filled in when a create request leaves a field
// blank. They come from config at wiring time.
type TodoDefaults struct {
	Duration float64
	Priority task.Priority
	Category string
}

func (d TodoDefaults) orModel() TodoDefaults {
	if d.Duration <= 0 {
		d.Duration = 1
	}
	if d.Priority == "" {
		d.Priority = task.PriorityMedium
	}
	if d.Category == "" {
		d.Category = task.DefaultCategory
	}
	return d
}

// TodoInput is a create request. Blank fields take defaults; ProjectID zero
// means the currently selected project.
type TodoInput struct {
	Title      string
	Duration   float64
	Priority   task.Priority
	Deadline   *time.Time
	Category   string
	Recurrence task.Recurrence
	ProjectID  int64
}

// Placement is the calendar span a created todo is scheduled into.
type Placement struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Todos owns the todo collection. It pushes scheduling-relevant edits into
// the event store by explicit calls; the event store never reaches back.
// Todos is the source of truth for title, duration, and completion; the
// event store owns start/end/allDay once a todo is placed.
type Todos struct {
	mu       sync.Mutex
	todos    []task.Todo
	nextID   int64
	defaults TodoDefaults

	events   *Events
	projects *Projects
	feed     watch.Feed[[]task.Todo]
}

// NewTodos builds a todo store wired to its event and project stores.
func NewTodos(events *Events, projects *Projects, defaults TodoDefaults) *Todos {
	return &Todos{
		nextID:   1,
		defaults: defaults.orModel(),
		events:   events,
		projects: projects,
	}
}

// Create validates input, fills defaults, appends the todo, and returns it
// by value. A missing title or a negative duration is a validation failure:
// nothing is stored and the caller should keep its form open.
func (s *Todos) Create(input TodoInput) (task.Todo, error) {
	t, err := s.materialize(input)
	if err != nil {
		return task.Todo{}, err
	}

	s.mu.Lock()
	t.ID = s.nextID
	s.nextID++
	s.todos = append(s.todos, t)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return t, nil
}

// CreateWithPlacement creates the todo and, when placement is non-nil,
// schedules it: a single linked event for one-off todos, or the expanded
// series for recurring ones.
func (s *Todos) CreateWithPlacement(input TodoInput, placement *Placement) (task.Todo, error) {
	t, err := s.Create(input)
	if err != nil {
		return task.Todo{}, err
	}
	if placement == nil {
		return t, nil
	}

	if t.Recurring() {
		s.events.AddAll(recur.Expand(t, placement.Start, placement.End, placement.AllDay))
		return t, nil
	}

	end := placement.End
	s.events.Add(calendar.Event{
		ID:     uuid.NewString(),
		Title:  t.Title,
		Start:  placement.Start,
		End:    &end,
		AllDay: placement.AllDay,
		Props:  calendar.Props{TodoID: t.ID, Completed: false},
	})
	return t, nil
}

// Update replaces the stored todo with the same id, then syncs the first
// linked event's title and recomputes its end from the new duration. Event
// timing (start) is never touched from this side.
func (s *Todos) Update(t task.Todo) error {
	s.mu.Lock()
	idx := s.indexLocked(t.ID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: update todo %d: %w", t.ID, ErrNotFound)
	}
	s.todos[idx] = t
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()

	title := t.Title
	duration := t.Duration
	// The linked event is optional; an unplaced todo has nothing to sync.
	_ = s.events.UpdateByTodo(t.ID, EventChange{Title: &title, DurationHours: &duration})
	return nil
}

// UpdateDuration changes only the duration, syncing the first linked event's
// end instant.
func (s *Todos) UpdateDuration(id int64, hours float64) error {
	if hours <= 0 {
		return fmt.Errorf("store: update todo %d: duration must be positive, got %v", id, hours)
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: update todo %d: %w", id, ErrNotFound)
	}
	s.todos[idx].Duration = hours
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()

	_ = s.events.UpdateByTodo(id, EventChange{DurationHours: &hours})
	return nil
}

// UpdateCompletion flips the todo's completed flag and mirrors it onto the
// first linked event.
func (s *Todos) UpdateCompletion(id int64, completed bool) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: update todo %d: %w", id, ErrNotFound)
	}
	s.todos[idx].Completed = completed
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()

	_ = s.events.UpdateByTodo(id, EventChange{Completed: &completed})
	return nil
}

// Delete removes the todo and cascades to every linked event.
func (s *Todos) Delete(id int64) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: delete todo %d: %w", id, ErrNotFound)
	}
	s.todos = append(s.todos[:idx], s.todos[idx+1:]...)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()

	s.events.DeleteByTodo(id)
	return nil
}

// BulkReplace swaps the whole collection in one commit. Used by the regroup
// engine: order and categories changed, but no todo semantically changed, so
// there is deliberately no event sync here.
func (s *Todos) BulkReplace(todos []task.Todo) {
	s.mu.Lock()
	s.todos = append([]task.Todo(nil), todos...)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
}

// Get looks a todo up by id.
func (s *Todos) Get(id int64) (task.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.todos[idx], true
	}
	return task.Todo{}, false
}

// Todos returns a copy of the collection.
func (s *Todos) Todos() []task.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ForProject returns the todos belonging to the given project.
func (s *Todos) ForProject(projectID int64) []task.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Todo, 0)
	for _, t := range s.todos {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// ForSelectedProject returns the todos of the currently selected project.
func (s *Todos) ForSelectedProject() []task.Todo {
	var selected int64
	if s.projects != nil {
		selected = s.projects.SelectedID()
	}
	return s.ForProject(selected)
}

// Watch streams snapshots until ctx is done.
func (s *Todos) Watch(ctx context.Context) <-chan []task.Todo {
	return s.feed.Subscribe(ctx)
}

func (s *Todos) materialize(input TodoInput) (task.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.Todo{}, fmt.Errorf("store: create todo: title required")
	}
	if input.Duration < 0 {
		return task.Todo{}, fmt.Errorf("store: create todo: duration must be positive, got %v", input.Duration)
	}

	t := task.Todo{
		Title:      title,
		Duration:   input.Duration,
		Priority:   input.Priority,
		Deadline:   input.Deadline,
		Category:   input.Category,
		Recurrence: input.Recurrence,
		ProjectID:  input.ProjectID,
	}
	if t.Duration == 0 {
		t.Duration = s.defaults.Duration
	}
	if t.Priority == "" {
		t.Priority = s.defaults.Priority
	}
	if t.Category == "" {
		t.Category = s.defaults.Category
	}
	if t.Recurrence == "" {
		t.Recurrence = task.RecurrenceNone
	}
	if s.projects != nil {
		if t.ProjectID == 0 {
			t.ProjectID = s.projects.SelectedID()
		} else if _, ok := s.projects.Get(t.ProjectID); !ok {
			return task.Todo{}, fmt.Errorf("store: create todo: project %d: %w", t.ProjectID, ErrNotFound)
		}
	}
	return t, nil
}

func (s *Todos) indexLocked(id int64) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Todos) snapshotLocked() []task.Todo {
	return append([]task.Todo(nil), s.todos...)
}
