package swipe

// TravelDistance is how far the icon, glow and trail move while animating,
// in abstract layout units. Hosts scale it to columns or pixels.
const TravelDistance = 420.0

// LabelBlur is the blur radius applied to the label while animating, in the
// same units as TravelDistance.
const LabelBlur = 4.0

// Visuals is the full set of animated properties.
//
// Opacities, scale and OverlayWidth are fractions in [0,1].
type Visuals struct {
	IconOffset   float64 `json:"icon_offset"`
	LabelOpacity float64 `json:"label_opacity"`
	LabelScale   float64 `json:"label_scale"`
	LabelBlur    float64 `json:"label_blur"`
	OverlayWidth float64 `json:"overlay_width"`
	GlowOffset   float64 `json:"glow_offset"`
	GlowOpacity  float64 `json:"glow_opacity"`
	TrailOffset  float64 `json:"trail_offset"`
}

var (
	restingVisuals = Visuals{
		IconOffset:   0,
		LabelOpacity: 1,
		LabelScale:   1,
		LabelBlur:    0,
		OverlayWidth: 0,
		GlowOffset:   0,
		GlowOpacity:  1,
		TrailOffset:  0,
	}
	animatingVisuals = Visuals{
		IconOffset:   TravelDistance,
		LabelOpacity: 0,
		LabelScale:   0.9,
		LabelBlur:    LabelBlur,
		OverlayWidth: 1,
		GlowOffset:   TravelDistance,
		GlowOpacity:  0,
		TrailOffset:  TravelDistance,
	}
)

// VisualsFor returns the target visuals for a phase.
func VisualsFor(p Phase) Visuals {
	if p == Animating {
		return animatingVisuals
	}
	return restingVisuals
}

// Lerp interpolates every property between a and b. t is clamped to [0,1].
func Lerp(a, b Visuals, t float64) Visuals {
	t = clamp01(t)
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return Visuals{
		IconOffset:   mix(a.IconOffset, b.IconOffset),
		LabelOpacity: mix(a.LabelOpacity, b.LabelOpacity),
		LabelScale:   mix(a.LabelScale, b.LabelScale),
		LabelBlur:    mix(a.LabelBlur, b.LabelBlur),
		OverlayWidth: mix(a.OverlayWidth, b.OverlayWidth),
		GlowOffset:   mix(a.GlowOffset, b.GlowOffset),
		GlowOpacity:  mix(a.GlowOpacity, b.GlowOpacity),
		TrailOffset:  mix(a.TrailOffset, b.TrailOffset),
	}
}

// OverlayAlpha is the opacity of the label overlay at fraction p of its
// width, fading background/80 to background/60 at the middle and to fully
// transparent at the right edge.
func OverlayAlpha(p float64) float64 {
	p = clamp01(p)
	if p <= 0.5 {
		return 0.8 - 0.4*p
	}
	return 1.2 * (1 - p)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
