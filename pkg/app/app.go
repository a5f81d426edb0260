// Package app assembles a working planner session: configuration, seeded
// stores, and the dialog coordinator. Every surface (CLI, TUI, MCP) starts
// here.
package app

import (
	"fmt"

	"github.com/spina95/time-blocking/pkg/config"
	"github.com/spina95/time-blocking/pkg/dialog"
	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/store"
)

// Load builds a planner from the on-disk configuration.
func Load() (*planner.Planner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("app: loading config: %w", err)
	}
	return New(cfg), nil
}

// New builds a planner from an explicit configuration.
func New(cfg config.Config) *planner.Planner {
	projects := store.NewProjects(cfg.SeedProject())
	events := store.NewEvents()
	todos := store.NewTodos(events, projects, cfg.TodoDefaults())
	return planner.New(todos, events, projects, dialog.NewCoordinator())
}
