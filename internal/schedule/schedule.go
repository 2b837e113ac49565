// Package schedule provides the delayed-execution capability the game engine
// runs on. Games only see the Scheduler interface, so the same engine can be
// driven by virtual time (tests, the Bubble Tea host) or by a real-time loop.
package schedule

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns true if the call prevented the
	// callback from running, false if it already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
// Implementations must never run two callbacks at the same time.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

