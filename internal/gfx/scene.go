package gfx

import (
	"math"

	"github.com/rileyhilliard/swipr/internal/swipe"
)

// Base layout, in the same units as swipe.TravelDistance.
const (
	IconSize    = 96.0
	IconRadius  = 24.0
	ArrowBox    = 48.0
	LabelLeft   = 112.0
	LabelSize   = 96.0
	GlowWidth   = 160.0
	GlowHeight  = 128.0
	TrailLeft   = 80.0
	TrailSize   = 96.0
	ShadowDrop  = 20.0
	SceneMargin = 48.0
)

// Rect is an axis-aligned box in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scene is one frame's geometry.
type Scene struct {
	Scale float64

	Icon    Rect
	Glow    Rect
	Trail   Rect
	Label   Rect
	Overlay Rect

	GlowAlpha  float64
	LabelAlpha float64
	LabelScale float64
	LabelBlur  float64 // window pixels
}

// Compose lays the scene out centered in a w x h window. labelWidth is the
// label's advance at LabelSize.
func Compose(v swipe.Visuals, w, h int, labelWidth float64) Scene {
	baseW := math.Max(IconSize+swipe.TravelDistance, LabelLeft+labelWidth)
	baseH := GlowHeight

	s := math.Min(
		(float64(w)-2*SceneMargin)/baseW,
		(float64(h)-2*SceneMargin)/baseH,
	)
	if s <= 0 || math.IsNaN(s) {
		s = 0.1
	}

	ox := (float64(w) - baseW*s) / 2
	cy := float64(h) / 2

	box := func(left, width, height float64) Rect {
		return Rect{X: ox + left*s, Y: cy - height*s/2, W: width * s, H: height * s}
	}

	label := box(LabelLeft, labelWidth, LabelSize)
	overlay := label
	overlay.W = label.W * v.OverlayWidth

	return Scene{
		Scale:      s,
		Icon:       box(v.IconOffset, IconSize, IconSize),
		Glow:       box(v.GlowOffset, GlowWidth, GlowHeight),
		Trail:      box(TrailLeft+v.TrailOffset, TrailSize, TrailSize),
		Label:      label,
		Overlay:    overlay,
		GlowAlpha:  v.GlowOpacity,
		LabelAlpha: v.LabelOpacity,
		LabelScale: v.LabelScale,
		LabelBlur:  v.LabelBlur * s,
	}
}
