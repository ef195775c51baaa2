package gfx

import (
	"testing"

	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/stretchr/testify/assert"
)

const testLabelWidth = 280.0

func TestCompose_Resting(t *testing.T) {
	sc := Compose(swipe.VisualsFor(swipe.Resting), 960, 400, testLabelWidth)

	baseW := IconSize + swipe.TravelDistance
	wantScale := (960 - 2*SceneMargin) / baseW
	assert.InDelta(t, wantScale, sc.Scale, 1e-9)

	ox := (960 - baseW*sc.Scale) / 2
	assert.InDelta(t, ox, sc.Icon.X, 1e-9)
	assert.InDelta(t, IconSize*sc.Scale, sc.Icon.W, 1e-9)

	_, cy := sc.Icon.Center()
	assert.InDelta(t, 200, cy, 1e-9, "icon is vertically centered")

	assert.Equal(t, 0.0, sc.Overlay.W)
	assert.Equal(t, 1.0, sc.LabelAlpha)
	assert.Equal(t, 1.0, sc.GlowAlpha)
	assert.Equal(t, 0.0, sc.LabelBlur)
}

func TestCompose_Animating(t *testing.T) {
	rest := Compose(swipe.VisualsFor(swipe.Resting), 960, 400, testLabelWidth)
	sc := Compose(swipe.VisualsFor(swipe.Animating), 960, 400, testLabelWidth)

	assert.InDelta(t, swipe.TravelDistance*sc.Scale, sc.Icon.X-rest.Icon.X, 1e-9)
	assert.InDelta(t, swipe.TravelDistance*sc.Scale, sc.Glow.X-rest.Glow.X, 1e-9)
	assert.InDelta(t, swipe.TravelDistance*sc.Scale, sc.Trail.X-rest.Trail.X, 1e-9)
	assert.Equal(t, rest.Label, sc.Label, "label box does not move")
	assert.InDelta(t, sc.Label.W, sc.Overlay.W, 1e-9)
	assert.InDelta(t, swipe.LabelBlur*sc.Scale, sc.LabelBlur, 1e-9)
	assert.Equal(t, 0.0, sc.GlowAlpha)
	assert.Equal(t, 0.9, sc.LabelScale)
}

func TestCompose_FitsShortWindow(t *testing.T) {
	sc := Compose(swipe.VisualsFor(swipe.Animating), 2000, 300, testLabelWidth)

	assert.InDelta(t, (300-2*SceneMargin)/GlowHeight, sc.Scale, 1e-9)
	assert.LessOrEqual(t, sc.Icon.X+sc.Icon.W, 2000.0)
}

func TestCompose_WideLabel(t *testing.T) {
	wide := 1000.0
	sc := Compose(swipe.VisualsFor(swipe.Resting), 960, 400, wide)

	assert.InDelta(t, (960-2*SceneMargin)/(LabelLeft+wide), sc.Scale, 1e-9)
	assert.LessOrEqual(t, sc.Label.X+sc.Label.W, 960.0-SceneMargin+1e-6)
}

func TestCompose_TinyWindow(t *testing.T) {
	sc := Compose(swipe.VisualsFor(swipe.Resting), 10, 10, testLabelWidth)
	assert.Greater(t, sc.Scale, 0.0)
}

func TestRect_Center(t *testing.T) {
	x, y := Rect{X: 10, Y: 20, W: 4, H: 6}.Center()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 23.0, y)
}

func TestRectImage(t *testing.T) {
	r := rectImage(Rect{X: 1.5, Y: 2.2, W: 3, H: 4})
	assert.Equal(t, 1, r.Min.X)
	assert.Equal(t, 2, r.Min.Y)
	assert.Equal(t, 5, r.Max.X)
	assert.Equal(t, 7, r.Max.Y)
}
