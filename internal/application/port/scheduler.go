package port

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents any further runs. It is safe to call more than once.
	Stop()
}

// Scheduler runs callbacks on the single event loop goroutine.
type Scheduler interface {
	// Post queues fn to run on the loop.
	Post(fn func())
	// AfterFunc runs fn on the loop once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn on the loop every d until stopped.
	Every(d time.Duration, fn func()) Timer
}
