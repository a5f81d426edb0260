package store

import (
	"context"
	"testing"
	"time"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/project"
	"github.com/spina95/time-blocking/pkg/task"
)

// Shared fixtures and watch helpers for the store tests.

func watchContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

func newFixture() (*Todos, *Events, *Projects) {
	events := NewEvents()
	projects := NewProjects(project.Project{Name: "Personal", Icon: "user", Color: "#1677ff"})
	todos := NewTodos(events, projects, TodoDefaults{})
	return todos, events, projects
}

func recvTodos(t *testing.T, ch <-chan []task.Todo) []task.Todo {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for todo snapshot")
		return nil
	}
}

func recvEvents(t *testing.T, ch <-chan []calendar.Event) []calendar.Event {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event snapshot")
		return nil
	}
}
