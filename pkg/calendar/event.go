// Package calendar defines the scheduled-block model and the interaction
// intents the calendar widget emits.
package calendar

import (
	"time"
)

// Props carries the event fields that link a block back to a todo. A TodoID
// of zero means the event is a standalone calendar entry. RecurrenceIndex is
// set only on events produced by recurrence expansion and is the occurrence's
// 0-based position in its series.
type Props struct {
	TodoID          int64 `json:"todoId,omitempty"`
	Completed       bool  `json:"completed"`
	RecurrenceIndex *int  `json:"recurrenceIndex,omitempty"`
}

// Linked reports whether the event references a todo.
func (p Props) Linked() bool {
	return p.TodoID != 0
}

// Event is one scheduled block on the calendar. End is optional for open
// ended and all-day blocks. All instants are local wall-clock.
type Event struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	AllDay bool       `json:"allDay,omitempty"`
	Props  Props      `json:"extendedProps"`
}

// Duration returns the event's span, or zero when End is unset.
func (e Event) Duration() time.Duration {
	if e.End == nil {
		return 0
	}
	return e.End.Sub(e.Start)
}

// EndOrStart returns End when present, otherwise Start. Handy for sorting.
func (e Event) EndOrStart() time.Time {
	if e.End == nil {
		return e.Start
	}
	return *e.End
}
