package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/watch"
)

// EventChange is a partial update applied through the todo link. Nil fields
// are left alone; prop changes shallow-merge into the event's existing props.
// DurationHours is the only way a duration becomes an end instant: the new
// end is computed from the event's existing start, never from a clock.
type EventChange struct {
	Title         *string
	Completed     *bool
	DurationHours *float64
}

// Events owns the calendar event collection.
type Events struct {
	mu     sync.Mutex
	events []calendar.Event
	feed   watch.Feed[[]calendar.Event]
}

// NewEvents builds an empty event store.
func NewEvents() *Events {
	return &Events{}
}

// Add appends an event.
func (s *Events) Add(e calendar.Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
}

// AddAll appends a series in one commit, so watchers see a single snapshot.
func (s *Events) AddAll(events []calendar.Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	s.events = append(s.events, events...)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
}

// Update replaces the stored event with the same id.
func (s *Events) Update(e calendar.Event) error {
	s.mu.Lock()
	idx := s.indexLocked(e.ID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: update event %s: %w", e.ID, ErrNotFound)
	}
	s.events[idx] = e
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return nil
}

// Delete removes the event with the given id.
func (s *Events) Delete(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: delete event %s: %w", id, ErrNotFound)
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return nil
}

// DeleteByTodo removes every event linked to the todo and returns how many
// were removed. Zero matches is not an error: the todo was simply unplaced.
func (s *Events) DeleteByTodo(todoID int64) int {
	s.mu.Lock()
	kept := s.events[:0]
	removed := 0
	for _, e := range s.events {
		if e.Props.TodoID == todoID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.events = kept
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return removed
}

// UpdateByTodo applies change to the FIRST event linked to the todo. The
// first-match restriction mirrors the todo-side sync contract; deletion is
// the only cascading link operation.
func (s *Events) UpdateByTodo(todoID int64, change EventChange) error {
	s.mu.Lock()
	idx := -1
	for i, e := range s.events {
		if e.Props.TodoID == todoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("store: update events for todo %d: %w", todoID, ErrNotFound)
	}

	e := s.events[idx]
	if change.Title != nil {
		e.Title = *change.Title
	}
	if change.Completed != nil {
		e.Props.Completed = *change.Completed
	}
	if change.DurationHours != nil {
		end := e.Start.Add(hoursToDuration(*change.DurationHours))
		e.End = &end
	}
	s.events[idx] = e
	s.feed.Publish(s.snapshotLocked())
	s.mu.Unlock()
	return nil
}

// Get looks an event up by id.
func (s *Events) Get(id string) (calendar.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.events[idx], true
	}
	return calendar.Event{}, false
}

// ByTodo returns every event linked to the todo, in store order.
func (s *Events) ByTodo(todoID int64) []calendar.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]calendar.Event, 0)
	for _, e := range s.events {
		if e.Props.TodoID == todoID {
			out = append(out, e)
		}
	}
	return out
}

// Events returns a copy of the collection.
func (s *Events) Events() []calendar.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Watch streams snapshots until ctx is done.
func (s *Events) Watch(ctx context.Context) <-chan []calendar.Event {
	return s.feed.Subscribe(ctx)
}

func (s *Events) indexLocked(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Events) snapshotLocked() []calendar.Event {
	return append([]calendar.Event(nil), s.events...)
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
