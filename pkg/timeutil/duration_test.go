package timeutil

import (
	"testing"
	"time"
)

func TestParseHours(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"1.5h", 1.5},
		{"2 hours", 2},
		{"90m", 1.5},
		{"30min", 0.5},
		{"1d", 24},
	}
	for _, c := range cases {
		got, err := ParseHours(c.in)
		if err != nil {
			t.Fatalf("ParseHours(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseHours(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseHoursRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "soon", "h2", "1.5 fortnights"} {
		if _, err := ParseHours(in); err == nil {
			t.Fatalf("ParseHours(%q) should fail", in)
		}
	}
}

func TestParseWhen(t *testing.T) {
	got, err := ParseWhen("2024-06-03 09:30")
	if err != nil {
		t.Fatalf("ParseWhen failed: %v", err)
	}
	want := time.Date(2024, time.June, 3, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	day, err := ParseWhen("2024-06-03")
	if err != nil {
		t.Fatalf("ParseWhen failed: %v", err)
	}
	if day.Hour() != 0 || day.Day() != 3 {
		t.Fatalf("bare dates should resolve to midnight, got %v", day)
	}

	today, err := ParseWhen("today")
	if err != nil {
		t.Fatalf("ParseWhen failed: %v", err)
	}
	if today.Hour() != 0 {
		t.Fatalf("today should resolve to midnight, got %v", today)
	}
}
