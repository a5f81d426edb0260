// Package planner wires the stores and the dialog coordinator together and
// translates the interaction intents coming from the calendar and task-list
// widgets into store calls. UIs and the CLI share this layer.
package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/dialog"
	"github.com/spina95/time-blocking/pkg/recur"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

// Planner owns the store instances for one process.
type Planner struct {
	todos    *store.Todos
	events   *store.Events
	projects *store.Projects
	dialogs  *dialog.Coordinator
}

// New wires a planner over the given stores.
func New(todos *store.Todos, events *store.Events, projects *store.Projects, dialogs *dialog.Coordinator) *Planner {
	return &Planner{todos: todos, events: events, projects: projects, dialogs: dialogs}
}

// Todos exposes the todo store.
func (p *Planner) Todos() *store.Todos { return p.todos }

// Events exposes the event store.
func (p *Planner) Events() *store.Events { return p.events }

// Projects exposes the project store.
func (p *Planner) Projects() *store.Projects { return p.projects }

// Dialogs exposes the dialog coordinator.
func (p *Planner) Dialogs() *dialog.Coordinator { return p.dialogs }

// RangeSelected handles an empty-span selection on the calendar grid: it
// opens the task dialog pre-filled with the span as placement and the span's
// length, rounded to a tenth of an hour, as duration.
func (p *Planner) RangeSelected(sel calendar.RangeSelection) {
	p.dialogs.OpenTask("Create New Task", dialog.TaskPayload{
		Duration: roundHours(sel.End.Sub(sel.Start)),
		Priority: string(task.PriorityMedium),
		Placement: &dialog.Placement{
			Start:  sel.Start,
			End:    sel.End,
			AllDay: sel.AllDay,
		},
	})
}

// ExternalItemDropped places an existing sidebar todo onto the calendar.
// Recurring todos expand into their full series; everything else becomes a
// single linked block. When the widget supplies no end, the todo's own
// duration sizes the block.
func (p *Planner) ExternalItemDropped(drop calendar.ExternalDrop) {
	t, ok := p.todos.Get(drop.TodoID)

	end := time.Time{}
	if drop.End != nil {
		end = *drop.End
	} else {
		hours := 1.0
		if ok {
			hours = t.Duration
		}
		end = drop.Start.Add(time.Duration(hours * float64(time.Hour)))
	}

	if ok && t.Recurring() {
		p.events.AddAll(recur.Expand(t, drop.Start, end, drop.AllDay))
		return
	}

	p.events.Add(calendar.Event{
		ID:     uuid.NewString(),
		Title:  drop.Title,
		Start:  drop.Start,
		End:    &end,
		AllDay: drop.AllDay,
		Props:  calendar.Props{TodoID: drop.TodoID, Completed: false},
	})
}

// EventResized handles a resize gesture. The linked todo adopts the new span
// rounded to a tenth of an hour, then the event keeps the exact resized
// timing. Orphaned events just keep their timing.
func (p *Planner) EventResized(change calendar.TimingChange) error {
	e, ok := p.events.Get(change.EventID)
	if !ok {
		return fmt.Errorf("planner: resize event %s: %w", change.EventID, store.ErrNotFound)
	}

	if e.Props.Linked() && change.NewEnd != nil {
		hours := roundHours(change.NewEnd.Sub(change.NewStart))
		if err := p.todos.UpdateDuration(e.Props.TodoID, hours); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	e.Start = change.NewStart
	e.End = change.NewEnd
	return p.events.Update(e)
}

// EventMoved handles a drag of a placed block: timing only, never the todo.
func (p *Planner) EventMoved(change calendar.TimingChange) error {
	e, ok := p.events.Get(change.EventID)
	if !ok {
		return fmt.Errorf("planner: move event %s: %w", change.EventID, store.ErrNotFound)
	}
	e.Start = change.NewStart
	e.End = change.NewEnd
	return p.events.Update(e)
}

// EventCheckboxToggled flips completion on a block and, when the block is
// linked to a live todo, on the todo as well. Dangling links are tolerated:
// the block still toggles, it just no longer syncs.
func (p *Planner) EventCheckboxToggled(toggle calendar.CheckboxToggle) error {
	e, ok := p.events.Get(toggle.EventID)
	if !ok {
		return fmt.Errorf("planner: toggle event %s: %w", toggle.EventID, store.ErrNotFound)
	}

	if e.Props.Linked() {
		if err := p.todos.UpdateCompletion(e.Props.TodoID, toggle.Checked); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	// The linked-todo sync only reaches the first event of a series; this
	// write covers the block the user actually clicked.
	e, ok = p.events.Get(toggle.EventID)
	if !ok {
		return fmt.Errorf("planner: toggle event %s: %w", toggle.EventID, store.ErrNotFound)
	}
	e.Props.Completed = toggle.Checked
	return p.events.Update(e)
}

// RequestCreateTask opens the blank task form.
func (p *Planner) RequestCreateTask() {
	p.dialogs.OpenTask("Create New Task", dialog.TaskPayload{
		Duration: 1,
		Priority: string(task.PriorityMedium),
	})
}

// RequestEditTask opens the task form pre-filled from the stored todo.
func (p *Planner) RequestEditTask(id int64) error {
	t, ok := p.todos.Get(id)
	if !ok {
		return fmt.Errorf("planner: edit todo %d: %w", id, store.ErrNotFound)
	}
	p.dialogs.OpenTask("Edit Task", dialog.TaskPayload{
		ID:       t.ID,
		Title:    t.Title,
		Duration: t.Duration,
		Priority: string(t.Priority),
		Deadline: t.Deadline,
		Category: t.Category,
	})
	return nil
}

// SubmitTask commits the task form. A validation failure leaves the dialog
// open and nothing stored; success closes it. Edits keep the stored
// completion and recurrence, which the form does not carry.
func (p *Planner) SubmitTask(payload dialog.TaskPayload) (task.Todo, error) {
	priority, err := task.ParsePriority(payload.Priority)
	if err != nil {
		return task.Todo{}, err
	}

	if payload.ID != 0 {
		current, ok := p.todos.Get(payload.ID)
		if !ok {
			return task.Todo{}, fmt.Errorf("planner: edit todo %d: %w", payload.ID, store.ErrNotFound)
		}
		if payload.Title == "" || payload.Duration <= 0 {
			return task.Todo{}, fmt.Errorf("planner: title and duration are required")
		}
		current.Title = payload.Title
		current.Duration = payload.Duration
		current.Priority = priority
		current.Deadline = payload.Deadline
		current.Category = payload.Category
		if err := p.todos.Update(current); err != nil {
			return task.Todo{}, err
		}
		p.dialogs.Close()
		return current, nil
	}

	var placement *store.Placement
	if payload.Placement != nil {
		placement = &store.Placement{
			Start:  payload.Placement.Start,
			End:    payload.Placement.End,
			AllDay: payload.Placement.AllDay,
		}
	}
	created, err := p.todos.CreateWithPlacement(store.TodoInput{
		Title:    payload.Title,
		Duration: payload.Duration,
		Priority: priority,
		Deadline: payload.Deadline,
		Category: payload.Category,
	}, placement)
	if err != nil {
		return task.Todo{}, err
	}
	p.dialogs.Close()
	return created, nil
}

// RequestDeleteTodo opens the delete confirmation for a todo.
func (p *Planner) RequestDeleteTodo(id int64) error {
	t, ok := p.todos.Get(id)
	if !ok {
		return fmt.Errorf("planner: delete todo %d: %w", id, store.ErrNotFound)
	}
	p.dialogs.OpenConfirm("Delete Task", dialog.ConfirmPayload{
		Message: fmt.Sprintf("Are you sure you want to delete %q?", t.Title),
		TodoID:  t.ID,
	})
	return nil
}

// ConfirmDelete executes whatever deletion the open confirm dialog holds and
// closes it. Without an open confirm dialog it is a no-op close.
func (p *Planner) ConfirmDelete() error {
	state := p.dialogs.State()
	defer p.dialogs.Close()

	if state.Kind != dialog.KindConfirm || state.Confirm == nil {
		return nil
	}
	if state.Confirm.TodoID != 0 {
		return p.todos.Delete(state.Confirm.TodoID)
	}
	if state.Confirm.EventID != "" {
		return p.events.Delete(state.Confirm.EventID)
	}
	return nil
}

// CancelDialog closes whatever dialog is open without acting on it.
func (p *Planner) CancelDialog() {
	p.dialogs.Close()
}

// RequestCreateProject opens the blank project form.
func (p *Planner) RequestCreateProject() {
	p.dialogs.OpenProject("Create New Project", dialog.ProjectPayload{})
}

// SubmitProject commits the project form; validation failures keep the
// dialog open.
func (p *Planner) SubmitProject(payload dialog.ProjectPayload) error {
	if _, err := p.projects.Add(payload.Name, payload.Icon, payload.Color); err != nil {
		return err
	}
	p.dialogs.Close()
	return nil
}

// MoveTodo applies a drag over the grouped task list and commits the new
// flat order. Grouping is computed from the current snapshot, so positions
// address what the list is showing.
func (p *Planner) MoveTodo(src, dst regroup.Position) error {
	groups := regroup.ByCategory(p.todos.Todos())
	flat, err := regroup.Move(groups, src, dst)
	if err != nil {
		return err
	}
	p.todos.BulkReplace(flat)
	return nil
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*10) / 10
}
