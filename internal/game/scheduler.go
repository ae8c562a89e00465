package game

import (
	"time"

	"github.com/coder/quartz"
)

// Handle cancels a scheduled callback.
type Handle interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the callback, false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
}

// ClockScheduler schedules callbacks on a quartz clock, so tests can drive
// ticks with a mock clock.
type ClockScheduler struct {
	clock quartz.Clock
}

// NewClockScheduler creates a scheduler backed by clock.
// A nil clock uses the real wall clock.
func NewClockScheduler(clock quartz.Clock) *ClockScheduler {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &ClockScheduler{clock: clock}
}

// After runs fn on the clock's goroutine once d has elapsed.
func (s *ClockScheduler) After(d time.Duration, fn func()) Handle {
	return timerHandle{t: s.clock.AfterFunc(d, fn, "game", "tick")}
}

// timerHandle adapts a quartz timer, whose Stop takes trap tags, to Handle.
type timerHandle struct {
	t *quartz.Timer
}

var _ Handle = timerHandle{}

func (h timerHandle) Stop() bool {
	return h.t.Stop("game", "tick")
}
