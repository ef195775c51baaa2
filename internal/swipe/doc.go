// Package swipe implements the Swipr swipe-away animation independently of
// any rendering host.
//
// The animation is a two-phase loop. An arrow icon rests to the left of the
// "Swipr" label, then glides across it while the label fades, shrinks and
// blurs behind a revealing overlay. After the glide the scene snaps back to
// rest, pauses, and glides again, forever.
//
// # Timing
//
// The loop is described by a Schedule table rather than nested timers:
//
//	mount ──500ms──▶ Animating ──3000ms──▶ Resting ──1200ms──▶ Animating ...
//
// The first-entrance delay (500ms) and the loop gap (1200ms) are deliberately
// different. Schedule.PhaseAt answers "which phase is active at offset t"
// without running anything, which makes the loop auditable.
//
// # Components
//
//	Animation  - owns the phase flag and a single pending timer
//	Visuals    - the visual property set, a pure function of Phase
//	Transition - eases displayed Visuals toward the current target
//	SampleAt   - deterministic "what is on screen at t" using a fake clock
//
// Animation is driven by a clock.Clock. Hosts pass clock.Real(); tests pass
// a clock.Fake and advance it explicitly.
//
// # Hosts
//
// Hosts observe phase changes (WithObserver) and feed them to a Transition,
// then sample the Transition once per frame:
//
//	tr := swipe.NewTransition(swipe.VisualsFor(swipe.Resting), swipe.TransitionDuration, swipe.SwipeEasing)
//	anim := swipe.NewAnimation(clock.Real(), swipe.WithObserver(func(p swipe.Phase, at time.Time) {
//		tr.Retarget(at, swipe.VisualsFor(p))
//	}))
//	anim.Mount()
//	defer anim.Unmount()
package swipe
