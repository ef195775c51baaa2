package swipe

import "time"

// Transition interpolates displayed Visuals toward a target over a fixed
// duration, the way a CSS transition does: retargeting mid-flight starts
// from whatever is on screen at that moment.
//
// A Transition is owned by one host loop and is not safe for concurrent use.
type Transition struct {
	from     Visuals
	to       Visuals
	start    time.Time
	duration time.Duration
	ease     Easing
}

// NewTransition creates a settled transition showing initial.
func NewTransition(initial Visuals, duration time.Duration, ease Easing) *Transition {
	if ease == nil {
		ease = Linear{}
	}
	return &Transition{
		from:     initial,
		to:       initial,
		duration: duration,
		ease:     ease,
	}
}

// Retarget begins moving toward target from the value displayed at now.
// Retargeting to the current target does not restart the transition.
func (t *Transition) Retarget(now time.Time, target Visuals) {
	if target == t.to {
		return
	}
	t.from = t.Sample(now)
	t.to = target
	t.start = now
}

// Progress returns linear progress in [0,1] at now.
func (t *Transition) Progress(now time.Time) float64 {
	if t.duration <= 0 || t.start.IsZero() {
		return 1
	}
	return clamp01(float64(now.Sub(t.start)) / float64(t.duration))
}

// Sample returns the eased visuals at now.
func (t *Transition) Sample(now time.Time) Visuals {
	p := t.Progress(now)
	if p >= 1 {
		return t.to
	}
	return Lerp(t.from, t.to, t.ease.At(p))
}

// Done reports whether the target has been reached.
func (t *Transition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Target returns the visuals being moved toward.
func (t *Transition) Target() Visuals {
	return t.to
}
