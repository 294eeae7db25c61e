// Package eventloop gives the controllers a single-threaded view of timers
// and network work.
//
// Controllers never touch goroutines directly. Repeating work is scheduled as
// a Task and off-loop work is handed to an Executor as a Job; in both cases
// the callback that mutates state runs back on the owning loop. Program wires
// this onto a running Bubble Tea program, Manual is the deterministic loop
// used by tests.
package eventloop

import (
	"context"
	"time"
)

// Task is a cancellable repeating callback.
type Task interface {
	// Cancel stops future firings. Safe to call more than once.
	Cancel()
	// Cancelled reports whether Cancel has been called.
	Cancelled() bool
}

// Scheduler starts repeating tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// Job runs off the loop. The returned continuation, if non-nil, is run on
// the loop once the job completes.
type Job func(ctx context.Context) func()

// Executor runs jobs off the loop.
type Executor interface {
	Go(job Job)
}

// Loop is both halves.
type Loop interface {
	Scheduler
	Executor
}

// Cancel cancels t if it is non-nil. Teardown paths call it unconditionally.
func Cancel(t Task) {
	if t != nil {
		t.Cancel()
	}
}
