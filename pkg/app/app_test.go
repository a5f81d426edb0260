package app

import (
	"testing"

	"github.com/spina95/time-blocking/pkg/config"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

func TestNewSeedsProjectAndDefaults(t *testing.T) {
	p := New(config.Config{
		DefaultDuration: 2,
		DefaultPriority: task.PriorityHigh,
		DefaultCategory: "Inbox",
		ProjectName:     "Personal",
		ProjectIcon:     "user",
		ProjectColor:    "#1677ff",
	})

	if got := p.Projects().SelectedID(); got != 1 {
		t.Fatalf("seed project should be selected, got %d", got)
	}

	created, err := p.Todos().Create(store.TodoInput{Title: "hello"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Duration != 2 || created.Priority != task.PriorityHigh || created.Category != "Inbox" {
		t.Fatalf("configured defaults not applied: %+v", created)
	}
}
