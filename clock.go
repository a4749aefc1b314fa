package wallets

import "time"

// Timer is a pending call scheduled by a Clock.
type Timer interface {
	// Stop prevents the call from happening, it returns false if it already happened or was stopped.
	Stop() bool
}

// Clock schedules deferred calls.
type Clock interface {
	// AfterFunc calls f once, after d.
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock, calls happen on their own goroutine.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
