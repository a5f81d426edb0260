package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spina95/time-blocking/pkg/recur"
	"github.com/spina95/time-blocking/pkg/task"
)

func span() (time.Time, time.Time) {
	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local)
	return start, start.Add(time.Hour)
}

func TestCreateFillsDefaults(t *testing.T) {
	todos, _, _ := newFixture()

	created, err := todos.Create(TodoInput{Title: "  write report  "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.Title != "write report" {
		t.Fatalf("title should be trimmed, got %q", created.Title)
	}
	if created.Duration != 1 {
		t.Fatalf("expected default 1h duration, got %v", created.Duration)
	}
	if created.Priority != task.PriorityMedium {
		t.Fatalf("expected default medium priority")
	}
	if created.Category != task.DefaultCategory {
		t.Fatalf("expected default category, got %q", created.Category)
	}
	if created.Completed {
		t.Fatalf("new todos start incomplete")
	}
	if created.ProjectID != 1 {
		t.Fatalf("expected currently selected project, got %d", created.ProjectID)
	}
}

func TestCreateValidation(t *testing.T) {
	todos, _, _ := newFixture()
	if _, err := todos.Create(TodoInput{Title: "   "}); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if _, err := todos.Create(TodoInput{Title: "x", Duration: -2}); err == nil {
		t.Fatalf("expected error for negative duration")
	}
	if len(todos.Todos()) != 0 {
		t.Fatalf("failed creates must not store anything")
	}
}

func TestCreateIDsAreUnique(t *testing.T) {
	todos, _, _ := newFixture()
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		created, err := todos.Create(TodoInput{Title: "t"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %d", created.ID)
		}
		seen[created.ID] = true
	}
	// Ids stay unique across deletes too.
	for id := range seen {
		if err := todos.Delete(id); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		break
	}
	created, _ := todos.Create(TodoInput{Title: "t"})
	if seen[created.ID] {
		t.Fatalf("id %d was reused after delete", created.ID)
	}
}

func TestCreateWithPlacementLinksOneEvent(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, err := todos.CreateWithPlacement(
		TodoInput{Title: "deep work", Duration: 1},
		&Placement{Start: start, End: end},
	)
	if err != nil {
		t.Fatalf("CreateWithPlacement failed: %v", err)
	}

	linked := events.ByTodo(created.ID)
	if len(linked) != 1 {
		t.Fatalf("expected 1 linked event, got %d", len(linked))
	}
	e := linked[0]
	if e.Title != "deep work" || !e.Start.Equal(start) {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.Props.Completed {
		t.Fatalf("placed event starts incomplete")
	}
	if e.Props.RecurrenceIndex != nil {
		t.Fatalf("one-off placement must not carry a recurrence index")
	}
}

func TestCreateWithPlacementExpandsRecurrence(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, err := todos.CreateWithPlacement(
		TodoInput{Title: "standup", Recurrence: task.RecurrenceDaily},
		&Placement{Start: start, End: end},
	)
	if err != nil {
		t.Fatalf("CreateWithPlacement failed: %v", err)
	}

	linked := events.ByTodo(created.ID)
	if len(linked) != recur.DailyCount {
		t.Fatalf("expected %d events, got %d", recur.DailyCount, len(linked))
	}
	for i, e := range linked {
		if e.Props.RecurrenceIndex == nil || *e.Props.RecurrenceIndex != i {
			t.Fatalf("occurrence %d has wrong index", i)
		}
	}
}

func TestCreateWithoutPlacement(t *testing.T) {
	todos, events, _ := newFixture()
	created, err := todos.CreateWithPlacement(TodoInput{Title: "later"}, nil)
	if err != nil {
		t.Fatalf("CreateWithPlacement failed: %v", err)
	}
	if len(events.ByTodo(created.ID)) != 0 {
		t.Fatalf("unplaced todo must not create events")
	}
}

func TestUpdateSyncsFirstEventOnly(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, _ := todos.CreateWithPlacement(
		TodoInput{Title: "standup", Recurrence: task.RecurrenceDaily},
		&Placement{Start: start, End: end},
	)

	created.Title = "sync"
	created.Duration = 2
	if err := todos.Update(created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	linked := events.ByTodo(created.ID)
	if linked[0].Title != "sync" {
		t.Fatalf("first event title should sync")
	}
	if linked[0].End.Sub(linked[0].Start) != 2*time.Hour {
		t.Fatalf("first event end should follow the new duration")
	}
	if !linked[0].Start.Equal(start) {
		t.Fatalf("todo edits must never move event timing")
	}
	if linked[1].Title == "sync" {
		t.Fatalf("only the first linked event may sync")
	}
}

func TestUpdateMissingTodo(t *testing.T) {
	todos, _, _ := newFixture()
	err := todos.Update(task.Todo{ID: 42, Title: "ghost", Duration: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDuration(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, _ := todos.CreateWithPlacement(
		TodoInput{Title: "deep work"},
		&Placement{Start: start, End: end},
	)

	if err := todos.UpdateDuration(created.ID, 2.5); err != nil {
		t.Fatalf("UpdateDuration failed: %v", err)
	}

	got, _ := todos.Get(created.ID)
	if got.Duration != 2.5 {
		t.Fatalf("todo duration should be 2.5, got %v", got.Duration)
	}
	if got.Title != "deep work" {
		t.Fatalf("duration update must not touch the title")
	}

	linked := events.ByTodo(created.ID)
	if linked[0].End.Sub(linked[0].Start) != 150*time.Minute {
		t.Fatalf("event span should be exactly 2.5h")
	}
	if !linked[0].Start.Equal(start) {
		t.Fatalf("event start must not change")
	}
}

func TestUpdateCompletionRoundTrip(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, _ := todos.CreateWithPlacement(
		TodoInput{Title: "deep work"},
		&Placement{Start: start, End: end},
	)
	before, _ := todos.Get(created.ID)

	if err := todos.UpdateCompletion(created.ID, true); err != nil {
		t.Fatalf("UpdateCompletion failed: %v", err)
	}
	mid, _ := todos.Get(created.ID)
	if !mid.Completed {
		t.Fatalf("todo should be completed")
	}
	if !events.ByTodo(created.ID)[0].Props.Completed {
		t.Fatalf("event should mirror completion")
	}

	if err := todos.UpdateCompletion(created.ID, false); err != nil {
		t.Fatalf("UpdateCompletion failed: %v", err)
	}
	after, _ := todos.Get(created.ID)
	if after != before {
		t.Fatalf("round trip should restore the todo exactly: %+v vs %+v", after, before)
	}
	if events.ByTodo(created.ID)[0].Props.Completed {
		t.Fatalf("event completion should be restored")
	}
}

func TestDeleteCascades(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	recurring, _ := todos.CreateWithPlacement(
		TodoInput{Title: "standup", Recurrence: task.RecurrenceWeekly},
		&Placement{Start: start, End: end},
	)
	other, _ := todos.CreateWithPlacement(
		TodoInput{Title: "solo"},
		&Placement{Start: start, End: end},
	)

	total := len(events.Events())
	matching := len(events.ByTodo(recurring.ID))
	if matching != recur.WeeklyCount {
		t.Fatalf("expected %d linked events, got %d", recur.WeeklyCount, matching)
	}

	if err := todos.Delete(recurring.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := todos.Get(recurring.ID); ok {
		t.Fatalf("todo should be gone")
	}
	if got := len(events.Events()); got != total-matching {
		t.Fatalf("event count should drop by %d, got %d of %d", matching, got, total)
	}
	if len(events.ByTodo(other.ID)) != 1 {
		t.Fatalf("unrelated events must survive the cascade")
	}
}

func TestBulkReplaceHasNoEventSideEffect(t *testing.T) {
	todos, events, _ := newFixture()
	start, end := span()

	created, _ := todos.CreateWithPlacement(
		TodoInput{Title: "deep work"},
		&Placement{Start: start, End: end},
	)

	reordered := todos.Todos()
	reordered[0].Category = "Focus"
	before := events.ByTodo(created.ID)[0]

	todos.BulkReplace(reordered)

	got, _ := todos.Get(created.ID)
	if got.Category != "Focus" {
		t.Fatalf("bulk replace should commit the new snapshot")
	}
	after := events.ByTodo(created.ID)[0]
	if after.Title != before.Title || !after.Start.Equal(before.Start) {
		t.Fatalf("bulk replace must not sync events")
	}
}

func TestForProjectFilters(t *testing.T) {
	todos, _, projects := newFixture()
	second, err := projects.Add("Work", "briefcase", "#fa541c")
	if err != nil {
		t.Fatalf("Add project failed: %v", err)
	}

	if _, err := todos.Create(TodoInput{Title: "personal thing"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := projects.Select(second.ID); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if _, err := todos.Create(TodoInput{Title: "work thing"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	selected := todos.ForSelectedProject()
	if len(selected) != 1 || selected[0].Title != "work thing" {
		t.Fatalf("selected-project view wrong: %+v", selected)
	}
	personal := todos.ForProject(1)
	if len(personal) != 1 || personal[0].Title != "personal thing" {
		t.Fatalf("project filter wrong: %+v", personal)
	}
}

func TestWatchObservesMutationsInOrder(t *testing.T) {
	ctx, cancel := watchContext()
	defer cancel()

	todos, _, _ := newFixture()
	ch := todos.Watch(ctx)

	first, _ := todos.Create(TodoInput{Title: "one"})
	if _, err := todos.Create(TodoInput{Title: "two"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := todos.Delete(first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if snap := recvTodos(t, ch); len(snap) != 1 {
		t.Fatalf("snapshot 1 should have 1 todo, got %d", len(snap))
	}
	if snap := recvTodos(t, ch); len(snap) != 2 {
		t.Fatalf("snapshot 2 should have 2 todos, got %d", len(snap))
	}
	snap := recvTodos(t, ch)
	if len(snap) != 1 || snap[0].Title != "two" {
		t.Fatalf("snapshot 3 should only hold the survivor, got %+v", snap)
	}
}

func TestWatchOrderingUnderConcurrentCreates(t *testing.T) {
	ctx, cancel := watchContext()
	defer cancel()

	todos, _, _ := newFixture()
	ch := todos.Watch(ctx)

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := todos.Create(TodoInput{Title: "t"}); err != nil {
				t.Errorf("Create failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// Each create grows the collection by one, so the watcher must see sizes
	// 1..workers in order. Any inversion means a commit published out of turn.
	for want := 1; want <= workers; want++ {
		if snap := recvTodos(t, ch); len(snap) != want {
			t.Fatalf("snapshot sizes out of order: got %d, want %d", len(snap), want)
		}
	}
}

func TestCreateRejectsUnknownProject(t *testing.T) {
	todos, _, projects := newFixture()
	if _, err := todos.Create(TodoInput{Title: "x", ProjectID: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown project, got %v", err)
	}
	if len(todos.Todos()) != 0 {
		t.Fatalf("failed create must not store anything")
	}

	second, err := projects.Add("Work", "briefcase", "#fa541c")
	if err != nil {
		t.Fatalf("Add project failed: %v", err)
	}
	created, err := todos.Create(TodoInput{Title: "x", ProjectID: second.ID})
	if err != nil {
		t.Fatalf("Create with explicit project failed: %v", err)
	}
	if created.ProjectID != second.ID {
		t.Fatalf("explicit project not kept, got %d", created.ProjectID)
	}
}
