package window

import (
	"fmt"
	"time"
)

// Defaults match the office rule: orders between 3:00 PM and 3:30 PM.
const (
	DefaultStartHour = 15
	DefaultEndMinute = 30
)

// Status reports whether ordering is currently allowed, with a message
// callers display verbatim.
type Status struct {
	Open    bool
	Message string
}

// Policy decides whether the daily order window is open. It is a pure
// function of wall-clock time: the window is open iff the local hour equals
// the start hour and the local minute is strictly below the end minute.
type Policy struct {
	startHour int
	endMinute int
	openMsg   string
	closedMsg string
}

// NewPolicy builds a policy for the given start hour and end minute. The two
// status messages are fixed at construction.
func NewPolicy(startHour, endMinute int) Policy {
	opens := formatClock(startHour, 0)
	closes := formatClock(startHour, endMinute)
	return Policy{
		startHour: startHour,
		endMinute: endMinute,
		openMsg:   fmt.Sprintf("Order window is open until %s.", closes),
		closedMsg: fmt.Sprintf("Ordering is closed. Please check back between %s and %s.", opens, closes),
	}
}

// Evaluate never fails; it always yields a status with a display message.
func (p Policy) Evaluate(now time.Time) Status {
	if now.Hour() == p.startHour && now.Minute() < p.endMinute {
		return Status{Open: true, Message: p.openMsg}
	}
	return Status{Open: false, Message: p.closedMsg}
}

// formatClock renders an hour/minute pair as a 12-hour time like "3:30 PM".
func formatClock(hour, minute int) string {
	t := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
