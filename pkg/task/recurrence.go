package task

import (
	"fmt"
	"strings"
)

// Recurrence identifies how a todo repeats when placed on the calendar.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// AllRecurrences returns the supported recurrence rules.
func AllRecurrences() []Recurrence {
	return []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly}
}

// ParseRecurrence converts a string to a Recurrence or returns an error for
// unknown values. Empty input maps to none.
func ParseRecurrence(raw string) (Recurrence, error) {
	r := Recurrence(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RecurrenceNone, nil
	}
	for _, candidate := range AllRecurrences() {
		if candidate == r {
			return candidate, nil
		}
	}
	return RecurrenceNone, fmt.Errorf("task: unknown recurrence %q", raw)
}

func (r Recurrence) String() string {
	return string(r)
}
