package planner

import (
	"testing"
	"time"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/dialog"
	"github.com/spina95/time-blocking/pkg/project"
	"github.com/spina95/time-blocking/pkg/recur"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

func newPlanner() *Planner {
	events := store.NewEvents()
	projects := store.NewProjects(project.Project{Name: "Personal", Icon: "user", Color: "#1677ff"})
	todos := store.NewTodos(events, projects, store.TodoDefaults{})
	return New(todos, events, projects, dialog.NewCoordinator())
}

func span() (time.Time, time.Time) {
	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local)
	return start, start.Add(time.Hour)
}

func TestRangeSelectedOpensPrefilledTaskDialog(t *testing.T) {
	p := newPlanner()
	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local)
	end := start.Add(95 * time.Minute)

	p.RangeSelected(calendar.RangeSelection{Start: start, End: end})

	state := p.Dialogs().State()
	if !state.Visible || state.Kind != dialog.KindTask || state.Task == nil {
		t.Fatalf("expected open task dialog, got %+v", state)
	}
	if state.Task.Duration != 1.6 {
		t.Fatalf("95m should round to 1.6h, got %v", state.Task.Duration)
	}
	if state.Task.Placement == nil || !state.Task.Placement.Start.Equal(start) {
		t.Fatalf("placement should carry the selected span")
	}
}

func TestSubmitTaskCreatesAndPlaces(t *testing.T) {
	p := newPlanner()
	start, end := span()

	created, err := p.SubmitTask(dialog.TaskPayload{
		Title:    "deep work",
		Duration: 1,
		Priority: "high",
		Placement: &dialog.Placement{
			Start: start,
			End:   end,
		},
	})
	if err != nil {
		t.Fatalf("SubmitTask failed: %v", err)
	}
	if created.Priority != task.PriorityHigh {
		t.Fatalf("expected high priority, got %s", created.Priority)
	}
	if len(p.Events().ByTodo(created.ID)) != 1 {
		t.Fatalf("expected one placed event")
	}
	if p.Dialogs().State().Visible {
		t.Fatalf("successful submit should close the dialog")
	}
}

func TestSubmitTaskValidationKeepsDialogOpen(t *testing.T) {
	p := newPlanner()
	p.RequestCreateTask()

	if _, err := p.SubmitTask(dialog.TaskPayload{Title: "", Duration: 1}); err == nil {
		t.Fatalf("expected validation failure")
	}
	if !p.Dialogs().State().Visible {
		t.Fatalf("validation failure must keep the dialog open")
	}
	if len(p.Todos().Todos()) != 0 {
		t.Fatalf("nothing may be stored on validation failure")
	}
}

func TestSubmitTaskEditKeepsCompletion(t *testing.T) {
	p := newPlanner()
	created, _ := p.Todos().Create(store.TodoInput{Title: "report"})
	if err := p.Todos().UpdateCompletion(created.ID, true); err != nil {
		t.Fatalf("UpdateCompletion failed: %v", err)
	}

	updated, err := p.SubmitTask(dialog.TaskPayload{
		ID:       created.ID,
		Title:    "quarterly report",
		Duration: 2,
		Priority: "low",
		Category: "Work",
	})
	if err != nil {
		t.Fatalf("SubmitTask failed: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("edit must not reset completion")
	}
	if updated.Title != "quarterly report" || updated.Duration != 2 {
		t.Fatalf("edit did not apply: %+v", updated)
	}
}

func TestExternalItemDroppedExpandsRecurring(t *testing.T) {
	p := newPlanner()
	created, _ := p.Todos().Create(store.TodoInput{
		Title:      "standup",
		Recurrence: task.RecurrenceDaily,
	})

	start, end := span()
	p.ExternalItemDropped(calendar.ExternalDrop{
		Title:  created.Title,
		TodoID: created.ID,
		Start:  start,
		End:    &end,
	})

	if got := len(p.Events().ByTodo(created.ID)); got != recur.DailyCount {
		t.Fatalf("expected %d events, got %d", recur.DailyCount, got)
	}
}

func TestExternalItemDroppedSizesFromTodoDuration(t *testing.T) {
	p := newPlanner()
	created, _ := p.Todos().Create(store.TodoInput{Title: "review", Duration: 2})

	start, _ := span()
	p.ExternalItemDropped(calendar.ExternalDrop{
		Title:  created.Title,
		TodoID: created.ID,
		Start:  start,
	})

	linked := p.Events().ByTodo(created.ID)
	if len(linked) != 1 {
		t.Fatalf("expected one event, got %d", len(linked))
	}
	if linked[0].End == nil || linked[0].End.Sub(linked[0].Start) != 2*time.Hour {
		t.Fatalf("block should be sized by the todo's duration")
	}
}

func TestEventResizedSyncsRoundedDuration(t *testing.T) {
	p := newPlanner()
	start, end := span()
	created, _ := p.Todos().CreateWithPlacement(
		store.TodoInput{Title: "deep work"},
		&store.Placement{Start: start, End: end},
	)
	e := p.Events().ByTodo(created.ID)[0]

	newEnd := start.Add(100 * time.Minute) // 1.67h, rounds to 1.7
	if err := p.EventResized(calendar.TimingChange{EventID: e.ID, NewStart: start, NewEnd: &newEnd}); err != nil {
		t.Fatalf("EventResized failed: %v", err)
	}

	got, _ := p.Todos().Get(created.ID)
	if got.Duration != 1.7 {
		t.Fatalf("todo should adopt rounded duration 1.7, got %v", got.Duration)
	}
	after, _ := p.Events().Get(e.ID)
	if !after.End.Equal(newEnd) {
		t.Fatalf("event should keep the exact resized end")
	}
	if !after.Start.Equal(start) {
		t.Fatalf("resize must not move the start")
	}
}

func TestEventMovedNeverTouchesTodo(t *testing.T) {
	p := newPlanner()
	start, end := span()
	created, _ := p.Todos().CreateWithPlacement(
		store.TodoInput{Title: "deep work", Duration: 1},
		&store.Placement{Start: start, End: end},
	)
	e := p.Events().ByTodo(created.ID)[0]
	before, _ := p.Todos().Get(created.ID)

	newStart := start.AddDate(0, 0, 1)
	newEnd := newStart.Add(time.Hour)
	if err := p.EventMoved(calendar.TimingChange{EventID: e.ID, NewStart: newStart, NewEnd: &newEnd}); err != nil {
		t.Fatalf("EventMoved failed: %v", err)
	}

	after, _ := p.Todos().Get(created.ID)
	if after != before {
		t.Fatalf("moving a block must not write the todo")
	}
	moved, _ := p.Events().Get(e.ID)
	if !moved.Start.Equal(newStart) {
		t.Fatalf("event timing should update")
	}
}

func TestEventCheckboxToggleSyncsBothWays(t *testing.T) {
	p := newPlanner()
	start, end := span()
	created, _ := p.Todos().CreateWithPlacement(
		store.TodoInput{Title: "standup", Recurrence: task.RecurrenceWeekly},
		&store.Placement{Start: start, End: end},
	)
	series := p.Events().ByTodo(created.ID)
	second := series[1]

	if err := p.EventCheckboxToggled(calendar.CheckboxToggle{EventID: second.ID, Checked: true}); err != nil {
		t.Fatalf("EventCheckboxToggled failed: %v", err)
	}

	got, _ := p.Todos().Get(created.ID)
	if !got.Completed {
		t.Fatalf("linked todo should complete")
	}
	clicked, _ := p.Events().Get(second.ID)
	if !clicked.Props.Completed {
		t.Fatalf("the clicked block should complete even when not first in the series")
	}
}

func TestCheckboxToggleOnOrphanedEvent(t *testing.T) {
	p := newPlanner()
	start, end := span()
	created, _ := p.Todos().CreateWithPlacement(
		store.TodoInput{Title: "solo"},
		&store.Placement{Start: start, End: end},
	)
	e := p.Events().ByTodo(created.ID)[0]

	// Simulate a dangling reference: the todo goes away but one event is
	// re-added out-of-band.
	if err := p.Todos().Delete(created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	p.Events().Add(e)

	if err := p.EventCheckboxToggled(calendar.CheckboxToggle{EventID: e.ID, Checked: true}); err != nil {
		t.Fatalf("orphaned toggle should be tolerated: %v", err)
	}
	got, _ := p.Events().Get(e.ID)
	if !got.Props.Completed {
		t.Fatalf("orphaned block should still toggle locally")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	p := newPlanner()
	start, end := span()
	created, _ := p.Todos().CreateWithPlacement(
		store.TodoInput{Title: "doomed"},
		&store.Placement{Start: start, End: end},
	)

	if err := p.RequestDeleteTodo(created.ID); err != nil {
		t.Fatalf("RequestDeleteTodo failed: %v", err)
	}
	state := p.Dialogs().State()
	if state.Kind != dialog.KindConfirm || state.Confirm == nil || state.Confirm.TodoID != created.ID {
		t.Fatalf("expected confirm dialog for todo, got %+v", state)
	}

	if err := p.ConfirmDelete(); err != nil {
		t.Fatalf("ConfirmDelete failed: %v", err)
	}
	if _, ok := p.Todos().Get(created.ID); ok {
		t.Fatalf("todo should be deleted")
	}
	if len(p.Events().ByTodo(created.ID)) != 0 {
		t.Fatalf("linked events should cascade away")
	}
	if p.Dialogs().State().Visible {
		t.Fatalf("confirm should close the dialog")
	}
}

func TestCancelDialogActsOnNothing(t *testing.T) {
	p := newPlanner()
	created, _ := p.Todos().Create(store.TodoInput{Title: "survivor"})

	if err := p.RequestDeleteTodo(created.ID); err != nil {
		t.Fatalf("RequestDeleteTodo failed: %v", err)
	}
	p.CancelDialog()

	if _, ok := p.Todos().Get(created.ID); !ok {
		t.Fatalf("cancel must not delete")
	}
	if p.Dialogs().State().Visible {
		t.Fatalf("cancel should close the dialog")
	}
}

func TestSubmitProject(t *testing.T) {
	p := newPlanner()
	p.RequestCreateProject()

	if err := p.SubmitProject(dialog.ProjectPayload{Name: "Work", Icon: "briefcase", Color: "#fa541c"}); err != nil {
		t.Fatalf("SubmitProject failed: %v", err)
	}
	if len(p.Projects().Projects()) != 2 {
		t.Fatalf("project should be added")
	}
	if p.Dialogs().State().Visible {
		t.Fatalf("successful submit should close the dialog")
	}

	p.RequestCreateProject()
	if err := p.SubmitProject(dialog.ProjectPayload{Name: "", Icon: "user", Color: "#1677ff"}); err == nil {
		t.Fatalf("expected validation failure")
	}
	if !p.Dialogs().State().Visible {
		t.Fatalf("validation failure must keep the dialog open")
	}
}

func TestMoveTodoCommitsRegroup(t *testing.T) {
	p := newPlanner()
	for _, spec := range []struct {
		title, category string
	}{
		{"A", "X"}, {"B", "X"}, {"C", "Y"},
	} {
		if _, err := p.Todos().Create(store.TodoInput{Title: spec.title, Category: spec.category}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	if err := p.MoveTodo(regroup.Position{Category: "X", Index: 0}, regroup.Position{Category: "Y", Index: 1}); err != nil {
		t.Fatalf("MoveTodo failed: %v", err)
	}

	flat := p.Todos().Todos()
	want := []string{"B", "C", "A"}
	for i, title := range want {
		if flat[i].Title != title {
			t.Fatalf("order %v, want %v", flat, want)
		}
	}
	if flat[2].Category != "Y" {
		t.Fatalf("moved todo should be recategorized")
	}
}
