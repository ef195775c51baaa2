package swipe

import (
	"time"

	"github.com/rileyhilliard/swipr/internal/clock"
)

// sampleEpoch is an arbitrary non-zero start for simulated runs.
var sampleEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// SampleAt returns what a host displays at offset at after mounting an
// animation with the given schedule. It runs the animation and a transition
// on a fake clock, so the result is deterministic.
func SampleAt(sched Schedule, at time.Duration) (Phase, Visuals) {
	fc := clock.NewFake(sampleEpoch)
	tr := NewTransition(VisualsFor(sched.Initial), TransitionDuration, SwipeEasing)

	anim := NewAnimation(fc,
		WithSchedule(sched),
		WithObserver(func(p Phase, when time.Time) {
			tr.Retarget(when, VisualsFor(p))
		}),
	)
	anim.Mount()
	defer anim.Unmount()

	if at > 0 {
		fc.Advance(at)
	}
	return anim.Phase(), tr.Sample(fc.Now())
}
