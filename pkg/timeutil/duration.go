// Package timeutil parses the human duration and date shorthand accepted by
// the command line flags.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-z]*)\s*$`)
	unitHours   = map[string]float64{
		"":        1,
		"h":       1,
		"hr":      1,
		"hrs":     1,
		"hour":    1,
		"hours":   1,
		"m":       1.0 / 60,
		"min":     1.0 / 60,
		"mins":    1.0 / 60,
		"minute":  1.0 / 60,
		"minutes": 1.0 / 60,
		"d":       24,
		"day":     24,
		"days":    24,
	}
)

// ParseHours converts shorthand like "1.5", "1.5h", "90m" or "1d" into
// fractional hours.
func ParseHours(s string) (float64, error) {
	m := spanPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, fmt.Errorf("timeutil: cannot parse duration %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("timeutil: cannot parse duration %q: %w", s, err)
	}
	unit, ok := unitHours[m[2]]
	if !ok {
		return 0, fmt.Errorf("timeutil: unknown duration unit %q", m[2])
	}
	return n * unit, nil
}

const (
	layoutISO     = "2006-01-02"
	layoutISOTime = "2006-01-02 15:04"
)

// ParseWhen accepts "today", "tomorrow", an ISO date, or an ISO date with a
// time of day. Bare dates resolve to local midnight.
func ParseWhen(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return midnight(time.Now()), nil
	case "tomorrow":
		return midnight(time.Now().AddDate(0, 0, 1)), nil
	}
	if t, err := time.ParseInLocation(layoutISOTime, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("timeutil: cannot parse date %q", s)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
