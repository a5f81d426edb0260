package calendar

import "time"

// The calendar widget is a consumer of event snapshots and a producer of the
// interaction intents below. The core never talks to the widget directly;
// the planner translates these into store calls.

// RangeSelection is emitted when the user selects an empty span on the grid.
type RangeSelection struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// ExternalDrop is emitted when a sidebar item is dragged onto the grid.
type ExternalDrop struct {
	Title  string
	TodoID int64
	Start  time.Time
	End    *time.Time
	AllDay bool
}

// TimingChange is emitted for both resize and move gestures on a placed
// block. Resize keeps Start, move shifts both ends.
type TimingChange struct {
	EventID  string
	NewStart time.Time
	NewEnd   *time.Time
}

// CheckboxToggle is emitted when the completion checkbox on a block flips.
type CheckboxToggle struct {
	EventID string
	Checked bool
}
