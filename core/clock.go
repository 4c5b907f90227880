package core

import "time"

// Clock returns the current time. Handles stamp entries and name run
// files with it, so tests can pin time.
type Clock func() time.Time

// SystemClock is the default Clock
func SystemClock() time.Time {
	return time.Now()
}

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
