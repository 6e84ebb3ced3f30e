// Package clock injects the timestamp source used when stamping analysis
// results. Task contexts carry a GeneratedAt time; routing every read of
// "now" through a Clock keeps those stamps deterministic under test and
// keeps the rest of the codebase free of direct time.Now calls.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. It is the production implementation
// and the fallback when a caller passes a nil Clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

var _ Clock = RealClock{}

// Fixed returns a Clock frozen at t. Tests use it to pin GeneratedAt to a
// known instant.
func Fixed(t time.Time) Clock {
	return fixedClock{at: t}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
