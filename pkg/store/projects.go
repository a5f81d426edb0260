package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spina95/time-blocking/pkg/project"
	"github.com/spina95/time-blocking/pkg/watch"
)

// ProjectSnapshot is what project watchers receive on every mutation.
type ProjectSnapshot struct {
	Projects   []project.Project
	SelectedID int64
}

// Projects holds the project catalog and the current selection.
type Projects struct {
	mu       sync.Mutex
	projects []project.Project
	selected int64
	nextID   int64
	feed     watch.Feed[ProjectSnapshot]
}

// NewProjects builds a store seeded with the given projects. The first seed
// becomes the selection. Seed ids are assigned here.
func NewProjects(seeds ...project.Project) *Projects {
	s := &Projects{nextID: 1}
	for _, seed := range seeds {
		seed.ID = s.nextID
		s.nextID++
		s.projects = append(s.projects, seed)
	}
	if len(s.projects) > 0 {
		s.selected = s.projects[0].ID
	}
	return s
}

// Add validates and appends a new project, returning it by value.
func (s *Projects) Add(name, icon, color string) (project.Project, error) {
	p := project.Project{Name: strings.TrimSpace(name), Icon: icon, Color: color}
	if err := p.Validate(); err != nil {
		return project.Project{}, err
	}

	s.mu.Lock()
	p.ID = s.nextID
	s.nextID++
	s.projects = append(s.projects, p)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return p, nil
}

// Select makes the project with the given id the current one.
func (s *Projects) Select(id int64) error {
	s.mu.Lock()
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("store: select project %d: %w", id, ErrNotFound)
	}
	s.selected = id
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return nil
}

// Get looks a project up by id.
func (s *Projects) Get(id int64) (project.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return project.Project{}, false
}

// Projects returns a copy of the catalog.
func (s *Projects) Projects() []project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]project.Project(nil), s.projects...)
}

// SelectedID returns the current selection, zero when none.
func (s *Projects) SelectedID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Watch streams snapshots until ctx is done.
func (s *Projects) Watch(ctx context.Context) <-chan ProjectSnapshot {
	return s.feed.Subscribe(ctx)
}

func (s *Projects) snapshotLocked() ProjectSnapshot {
	return ProjectSnapshot{
		Projects:   append([]project.Project(nil), s.projects...),
		SelectedID: s.selected,
	}
}
