package swipe

import (
	"sync"
	"time"

	"github.com/rileyhilliard/swipr/internal/clock"
	"github.com/rileyhilliard/swipr/internal/logger"
)

// Observer is notified after every phase change with the clock time at
// which the change happened. It is called without the animation lock held.
type Observer func(p Phase, at time.Time)

// Option configures an Animation.
type Option func(*Animation)

// WithSchedule replaces the default loop. An invalid schedule is never
// armed: Mount logs a warning and the animation stays in its initial phase.
func WithSchedule(s Schedule) Option {
	return func(a *Animation) {
		a.sched = s
	}
}

// WithObserver registers a phase change callback.
func WithObserver(fn Observer) Option {
	return func(a *Animation) {
		a.observer = fn
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logger.Logger) Option {
	return func(a *Animation) {
		a.log = l
	}
}

// Animation drives the looping phase schedule.
//
// At most one timer is pending at any time. Arming a timer stops the
// previous one, and every callback carries the generation it was armed in;
// Mount and Unmount start a new generation so stale callbacks are no-ops.
type Animation struct {
	clock    clock.Clock
	sched    Schedule
	observer Observer
	log      logger.Logger

	mu      sync.Mutex
	phase   Phase
	mounted bool
	gen     uint64
	timer   clock.Timer
}

// NewAnimation creates an unmounted animation using the default schedule.
func NewAnimation(clk clock.Clock, opts ...Option) *Animation {
	a := &Animation{
		clock: clk,
		sched: DefaultSchedule(),
		log:   logger.Noop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.phase = a.sched.Initial
	return a
}

// Mount resets to the initial phase and arms the entrance timer.
// Mounting again supersedes the running schedule.
func (a *Animation) Mount() {
	a.mu.Lock()
	a.stopLocked()
	a.gen++
	a.mounted = true
	changed := a.phase != a.sched.Initial
	a.phase = a.sched.Initial
	now := a.clock.Now()

	if err := a.sched.Validate(); err != nil {
		a.mu.Unlock()
		a.log.Warn("schedule not armed: %v", err)
		a.notify(changed, a.sched.Initial, now)
		return
	}

	a.armLocked(a.gen, a.sched.Entrance, 0)
	gen := a.gen
	a.mu.Unlock()

	a.log.Debug("mounted gen=%d, entrance in %s", gen, a.sched.Entrance)
	a.notify(changed, a.sched.Initial, now)
}

// Unmount cancels the pending timer. No phase change happens after Unmount
// returns. A change that was already applied when Unmount took the lock may
// still reach the observer once after Unmount returns; its phase is the
// current one, so hosts can treat it like any other update. Observers may
// call Unmount. Calling Unmount on an unmounted animation does nothing.
func (a *Animation) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.mounted {
		return
	}
	a.stopLocked()
	a.gen++
	a.mounted = false
	a.log.Debug("unmounted")
}

// Phase returns the current phase.
func (a *Animation) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Mounted reports whether the animation is running.
func (a *Animation) Mounted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mounted
}

// Pending reports whether a phase timer is armed.
func (a *Animation) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// Schedule returns the loop description in use.
func (a *Animation) Schedule() Schedule {
	return a.sched
}

func (a *Animation) armLocked(gen uint64, delay time.Duration, idx int) {
	a.stopLocked()
	a.timer = a.clock.AfterFunc(delay, func() {
		a.fire(gen, idx)
	})
}

func (a *Animation) stopLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// fire enters loop step idx and arms the following step.
func (a *Animation) fire(gen uint64, idx int) {
	a.mu.Lock()
	if !a.mounted || gen != a.gen {
		a.mu.Unlock()
		return
	}

	// This timer has fired; drop it so arming the next one doesn't stop it.
	a.timer = nil

	step := a.sched.Loop[idx]
	changed := a.phase != step.Phase
	a.phase = step.Phase
	now := a.clock.Now()
	a.armLocked(gen, step.Hold, (idx+1)%len(a.sched.Loop))
	a.mu.Unlock()

	a.log.Debug("phase=%s hold=%s", step.Phase, step.Hold)
	if a.current(gen) {
		a.notify(changed, step.Phase, now)
	}
}

// current reports whether gen is still the live generation.
func (a *Animation) current(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mounted && a.gen == gen
}

func (a *Animation) notify(changed bool, p Phase, at time.Time) {
	if changed && a.observer != nil {
		a.observer(p, at)
	}
}
