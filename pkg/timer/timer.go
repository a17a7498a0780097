// Package timer implements the cooperative software timer facility used by
// the toolkit.
//
// Timers are virtual: nothing fires until the owner of the main loop calls
// [Step], so callbacks always run on the loop's goroutine and never race
// with widget mutators dispatched from the same loop. Timing is best-effort;
// a timer whose deadline has passed fires on the next Step, however late
// that is, and at most once per Step.
package timer

import (
	"sync"
	"time"
)

var (
	timerMu      sync.Mutex
	activeTimers = make(map[*Timer]struct{})
)

// Timer invokes a callback after a delay, optionally repeating.
//
// A Timer has at most one pending callback: starting an active timer
// reschedules it, and a periodic timer is re-armed only after its callback
// has run.
type Timer struct {
	callback func()
	period   time.Duration
	periodic bool
	next     time.Time
}

// New creates a timer with the given callback. The timer is idle until
// Start is called.
func New(callback func()) *Timer {
	return &Timer{callback: callback}
}

// Start arms the timer to fire after period, repeating every period when
// periodic is true. Starting an active timer reschedules it from now.
func (t *Timer) Start(period time.Duration, periodic bool) {
	t.period = period
	t.periodic = periodic
	t.next = Now().Add(period)
	timerMu.Lock()
	activeTimers[t] = struct{}{}
	timerMu.Unlock()
}

// Stop disarms the timer. Stopping an idle timer is a no-op.
func (t *Timer) Stop() {
	timerMu.Lock()
	delete(activeTimers, t)
	timerMu.Unlock()
}

// IsActive returns whether the timer is armed.
func (t *Timer) IsActive() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	_, ok := activeTimers[t]
	return ok
}

// Period returns the configured delay.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Step services due timers. It must be called regularly from the main loop.
// Each due timer fires exactly once; periodic timers are rescheduled from
// the current time, so a late Step never produces a burst of catch-up
// callbacks.
func Step() {
	now := Now()

	timerMu.Lock()
	if len(activeTimers) == 0 {
		timerMu.Unlock()
		return
	}
	// Collect due timers, then release the lock before running callbacks so
	// a callback may start or stop timers.
	due := make([]*Timer, 0, len(activeTimers))
	for t := range activeTimers {
		if !now.Before(t.next) {
			due = append(due, t)
			if t.periodic {
				t.next = now.Add(t.period)
			} else {
				delete(activeTimers, t)
			}
		}
	}
	timerMu.Unlock()

	for _, t := range due {
		if t.callback != nil {
			t.callback()
		}
	}
}

// HasActive returns true if any timers are armed.
func HasActive() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(activeTimers) > 0
}
