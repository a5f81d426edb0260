// Package recur expands a recurring todo placement into its event series.
// It is pure: it never touches a store.
package recur

import (
	"time"

	"github.com/google/uuid"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/task"
)

// Occurrence counts are fixed per rule, not user configurable.
const (
	DailyCount   = 30
	WeeklyCount  = 12
	MonthlyCount = 12
)

// Count returns the number of occurrences generated for a rule. Unknown or
// none rules yield zero.
func Count(rule task.Recurrence) int {
	switch rule {
	case task.RecurrenceDaily:
		return DailyCount
	case task.RecurrenceWeekly:
		return WeeklyCount
	case task.RecurrenceMonthly:
		return MonthlyCount
	default:
		return 0
	}
}

// Expand turns one placement of a recurring todo into its full event series.
// The wall-clock duration end-start is held constant across occurrences.
// Daily occurrences advance by a fixed 24h step; weekly and monthly use
// calendar-aware day/month arithmetic, so day-of-month overflow follows the
// standard rules (Jan 31 + 1 month normalizes past February).
func Expand(t task.Todo, start, end time.Time, allDay bool) []calendar.Event {
	count := Count(t.Recurrence)
	if count == 0 {
		return nil
	}

	duration := end.Sub(start)
	events := make([]calendar.Event, 0, count)

	for i := 0; i < count; i++ {
		occurrenceStart := occurrence(t.Recurrence, start, i)
		occurrenceEnd := occurrenceStart.Add(duration)
		index := i
		events = append(events, calendar.Event{
			ID:     uuid.NewString(),
			Title:  t.Title,
			Start:  occurrenceStart,
			End:    &occurrenceEnd,
			AllDay: allDay,
			Props: calendar.Props{
				TodoID:          t.ID,
				Completed:       false,
				RecurrenceIndex: &index,
			},
		})
	}
	return events
}

func occurrence(rule task.Recurrence, start time.Time, i int) time.Time {
	switch rule {
	case task.RecurrenceDaily:
		return start.Add(time.Duration(i) * 24 * time.Hour)
	case task.RecurrenceWeekly:
		return start.AddDate(0, 0, 7*i)
	case task.RecurrenceMonthly:
		return start.AddDate(0, i, 0)
	default:
		return start
	}
}
