package domain

import (
	"fmt"
	"time"
)

// Snapshot is the derived scroll state at one sampled instant. It is a value:
// every accepted sample produces a new one, nothing mutates it in place.
// The zero value is the state before any sample.
type Snapshot struct {
	X             int  // horizontal offset in columns
	Y             int  // vertical offset in rows
	ScrollingDown bool // Y grew between the previous sample and this one
}

// Direction returns a one-rune arrow for status lines
func (s Snapshot) Direction() string {
	if s.ScrollingDown {
		return "↓"
	}
	return "↑"
}

func (s Snapshot) String() string {
	return fmt.Sprintf("x=%d y=%d down=%t", s.X, s.Y, s.ScrollingDown)
}

// TimedSnapshot is a published snapshot with where and when it came from
type TimedSnapshot struct {
	At     time.Time
	Source string // tracked surface kind, e.g. "window"
	Snapshot
}
