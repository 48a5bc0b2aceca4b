// Package schedule provides single-shot, cancellable deferred callbacks for
// the interaction primitives.
//
// Callbacks always run on the UI goroutine: Loop hands expirations to the
// Bubble Tea program as FireMsg values and runs the callback when the host
// routes the message back through Loop.Fire. Manual runs callbacks
// synchronously from Advance, for tests.
package schedule

import (
	"time"
)

// Handle cancels a scheduled callback. Cancel is idempotent and is a no-op
// after the callback has run.
type Handle interface {
	Cancel()
}

// Scheduler arms a callback to run once after d.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
}

// Slot holds at most one pending callback. Arming a slot always cancels the
// callback it already holds, and Cancel releases it from every exit path.
type Slot struct {
	h Handle
}

// Arm cancels any pending callback and schedules fn after d.
func (s *Slot) Arm(sched Scheduler, d time.Duration, fn func()) {
	s.Cancel()
	var h Handle
	h = sched.After(d, func() {
		if s.h == h {
			s.h = nil
		}
		fn()
	})
	s.h = h
}

// Cancel cancels the pending callback, if any.
func (s *Slot) Cancel() {
	if s.h != nil {
		s.h.Cancel()
		s.h = nil
	}
}

// Pending reports whether a callback is armed and has not run.
func (s *Slot) Pending() bool {
	return s.h != nil
}
