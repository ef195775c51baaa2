package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisualsFor(t *testing.T) {
	rest := VisualsFor(Resting)
	assert.Equal(t, 0.0, rest.IconOffset)
	assert.Equal(t, 1.0, rest.LabelOpacity)
	assert.Equal(t, 1.0, rest.LabelScale)
	assert.Equal(t, 0.0, rest.LabelBlur)
	assert.Equal(t, 0.0, rest.OverlayWidth)
	assert.Equal(t, 0.0, rest.GlowOffset)
	assert.Equal(t, 1.0, rest.GlowOpacity)
	assert.Equal(t, 0.0, rest.TrailOffset)

	anim := VisualsFor(Animating)
	assert.Equal(t, 420.0, anim.IconOffset)
	assert.Equal(t, 0.0, anim.LabelOpacity)
	assert.Equal(t, 0.9, anim.LabelScale)
	assert.Greater(t, anim.LabelBlur, 0.0)
	assert.Equal(t, 1.0, anim.OverlayWidth)
	assert.Equal(t, 420.0, anim.GlowOffset)
	assert.Equal(t, 0.0, anim.GlowOpacity)
	assert.Equal(t, 420.0, anim.TrailOffset)
}

func TestVisualsFor_Idempotent(t *testing.T) {
	for _, p := range []Phase{Resting, Animating} {
		first := VisualsFor(p)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, VisualsFor(p))
		}
	}
}

func TestVisualsFor_UnaffectedByAnimationState(t *testing.T) {
	a, fc, _ := newTestAnimation(t)
	before := VisualsFor(Animating)

	a.Mount()
	fc.Advance(10 * time.Second)
	a.Unmount()

	assert.Equal(t, before, VisualsFor(Animating))
}

func TestLerp(t *testing.T) {
	a := VisualsFor(Resting)
	b := VisualsFor(Animating)

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, a, Lerp(a, b, -3), "clamped below")
	assert.Equal(t, b, Lerp(a, b, 2), "clamped above")

	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 210.0, mid.IconOffset, 1e-9)
	assert.InDelta(t, 0.5, mid.LabelOpacity, 1e-9)
	assert.InDelta(t, 0.95, mid.LabelScale, 1e-9)
	assert.InDelta(t, 0.5, mid.OverlayWidth, 1e-9)
	assert.InDelta(t, 0.5, mid.GlowOpacity, 1e-9)
}

func TestOverlayAlpha(t *testing.T) {
	assert.InDelta(t, 0.8, OverlayAlpha(0), 1e-9)
	assert.InDelta(t, 0.6, OverlayAlpha(0.5), 1e-9)
	assert.InDelta(t, 0.0, OverlayAlpha(1), 1e-9)
	assert.InDelta(t, 0.8, OverlayAlpha(-1), 1e-9, "clamped")

	prev := OverlayAlpha(0)
	for p := 0.05; p <= 1; p += 0.05 {
		a := OverlayAlpha(p)
		assert.LessOrEqual(t, a, prev, "non-increasing at %.2f", p)
		prev = a
	}
}
