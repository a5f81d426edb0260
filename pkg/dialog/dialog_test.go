package dialog

import (
	"context"
	"testing"
	"time"
)

func TestOpenTask(t *testing.T) {
	c := NewCoordinator()
	c.OpenTask("Create New Task", TaskPayload{Title: "", Duration: 1, Priority: "medium"})

	state := c.State()
	if !state.Visible {
		t.Fatalf("dialog should be visible")
	}
	if state.Kind != KindTask || state.Task == nil {
		t.Fatalf("expected task payload, got %+v", state)
	}
	if state.Confirm != nil || state.Project != nil {
		t.Fatalf("non-matching payloads must be nil")
	}
}

func TestSecondOpenReplacesFirst(t *testing.T) {
	c := NewCoordinator()
	c.OpenTask("Create New Task", TaskPayload{Duration: 1})
	c.OpenConfirm("Delete Task", ConfirmPayload{Message: "Delete this task?", TodoID: 4})

	state := c.State()
	if state.Kind != KindConfirm || state.Confirm == nil {
		t.Fatalf("last open should win, got %+v", state)
	}
	if state.Confirm.TodoID != 4 {
		t.Fatalf("expected confirm payload for todo 4")
	}
	if state.Task != nil {
		t.Fatalf("replaced payload must not linger")
	}
}

func TestCloseResets(t *testing.T) {
	c := NewCoordinator()
	c.OpenProject("Create New Project", ProjectPayload{Name: "Home"})
	c.Close()

	state := c.State()
	if state.Visible || state.Title != "" || state.Kind != "" {
		t.Fatalf("close should reset the slot, got %+v", state)
	}
	if state.Task != nil || state.Confirm != nil || state.Project != nil {
		t.Fatalf("close should clear all payloads")
	}
}

func TestWatchObservesReplacements(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewCoordinator()
	ch := c.Watch(ctx)

	c.OpenTask("Create New Task", TaskPayload{Duration: 1})
	c.Close()

	first := recv(t, ch)
	if first.Kind != KindTask || !first.Visible {
		t.Fatalf("expected the open state first, got %+v", first)
	}
	second := recv(t, ch)
	if second.Visible {
		t.Fatalf("expected the closed state second, got %+v", second)
	}
}

func recv(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for dialog state")
		return State{}
	}
}
