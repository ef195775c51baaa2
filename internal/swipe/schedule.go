package swipe

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/swipr/internal/errors"
)

// Timing constants. EntranceDelay and LoopGap are intentionally distinct:
// the first entrance is quicker than the pause between loops.
const (
	EntranceDelay      = 500 * time.Millisecond
	TransitionDuration = 3000 * time.Millisecond
	LoopGap            = 1200 * time.Millisecond
)

// Step enters Phase and holds it for Hold before moving to the next step.
type Step struct {
	Phase Phase
	Hold  time.Duration
}

// Schedule is the finite loop description consumed by Animation.
// On mount the phase is Initial. After Entrance the first Loop step begins;
// the Loop then repeats indefinitely.
type Schedule struct {
	Initial  Phase
	Entrance time.Duration
	Loop     []Step
}

// Change is a phase boundary at an offset from mount.
type Change struct {
	At    time.Duration
	Phase Phase
}

// DefaultSchedule returns the Swipr loop: rest 500ms, glide 3000ms,
// rest 1200ms, glide 3000ms, ...
func DefaultSchedule() Schedule {
	return Schedule{
		Initial:  Resting,
		Entrance: EntranceDelay,
		Loop: []Step{
			{Phase: Animating, Hold: TransitionDuration},
			{Phase: Resting, Hold: LoopGap},
		},
	}
}

// Validate checks the schedule can drive a loop without spinning.
func (s Schedule) Validate() error {
	if s.Entrance < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Entrance delay %s is negative", s.Entrance),
			"Use a zero or positive entrance delay")
	}
	if len(s.Loop) == 0 {
		return errors.New(errors.ErrConfig,
			"Schedule has no loop steps",
			"Add at least one step with a positive hold")
	}
	for i, step := range s.Loop {
		if step.Hold <= 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Loop step %d (%s) has non-positive hold %s", i, step.Phase, step.Hold),
				"Every loop step needs a hold greater than zero")
		}
	}
	return nil
}

// Period is the duration of one full loop.
func (s Schedule) Period() time.Duration {
	var total time.Duration
	for _, step := range s.Loop {
		total += step.Hold
	}
	return total
}

// PhaseAt returns the phase active at elapsed time after mount.
// Boundaries are half-open: the new phase is active exactly at its start.
func (s Schedule) PhaseAt(elapsed time.Duration) Phase {
	if elapsed < s.Entrance || len(s.Loop) == 0 {
		return s.Initial
	}
	period := s.Period()
	if period <= 0 {
		return s.Loop[0].Phase
	}

	offset := (elapsed - s.Entrance) % period
	for _, step := range s.Loop {
		if offset < step.Hold {
			return step.Phase
		}
		offset -= step.Hold
	}
	return s.Loop[len(s.Loop)-1].Phase
}

// Boundaries lists every step start up to and including until.
// Steps that re-enter the current phase are still listed.
func (s Schedule) Boundaries(until time.Duration) []Change {
	if s.Validate() != nil {
		return nil
	}

	var out []Change
	at := s.Entrance
	for i := 0; at <= until; i = (i + 1) % len(s.Loop) {
		step := s.Loop[i]
		out = append(out, Change{At: at, Phase: step.Phase})
		at += step.Hold
	}
	return out
}
