package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/rileyhilliard/swipr/internal/ui"
)

const (
	backgroundStrips = 48
	gradientStrips   = 32
	glowLayers       = 10
	shadowLayers     = 6
)

// nrgba converts c to a straight-alpha color with opacity a.
func nrgba(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// fillRoundRect fills an opaque rounded rectangle. Pieces overlap, so c
// should not be translucent.
func fillRoundRect(dst *ebiten.Image, r Rect, radius float64, c color.Color) {
	rad := math.Min(radius, math.Min(r.W, r.H)/2)
	fillRect(dst, Rect{X: r.X + rad, Y: r.Y, W: r.W - 2*rad, H: r.H}, c)
	fillRect(dst, Rect{X: r.X, Y: r.Y + rad, W: r.W, H: r.H - 2*rad}, c)
	for _, p := range [][2]float64{
		{r.X + rad, r.Y + rad},
		{r.X + r.W - rad, r.Y + rad},
		{r.X + rad, r.Y + r.H - rad},
		{r.X + r.W - rad, r.Y + r.H - rad},
	} {
		vector.FillCircle(dst, float32(p[0]), float32(p[1]), float32(rad), c, true)
	}
}

// drawBackground fills the window with a left-to-right gradient.
func drawBackground(dst *ebiten.Image, th ui.Theme) {
	b := dst.Bounds()
	w := float64(b.Dx()) / backgroundStrips
	for i := 0; i < backgroundStrips; i++ {
		t := float64(i) / float64(backgroundStrips-1)
		c := th.Background.BlendLab(th.Muted, t)
		// +1 hides seams between strips
		fillRect(dst, Rect{X: float64(i) * w, Y: 0, W: w + 1, H: float64(b.Dy())}, nrgba(c, 1))
	}
}

// drawSoftBlob stacks translucent circles so the center accumulates to
// roughly alpha.
func drawSoftBlob(dst *ebiten.Image, cx, cy, radius float64, c colorful.Color, alpha float64, layers int) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	each := nrgba(c, alpha/float64(layers))
	for i := 0; i < layers; i++ {
		r := radius * float64(layers-i) / float64(layers)
		vector.FillCircle(dst, float32(cx), float32(cy), float32(r), each, true)
	}
}

func drawGlow(dst *ebiten.Image, sc Scene, th ui.Theme) {
	cx, cy := sc.Glow.Center()
	drawSoftBlob(dst, cx, cy, sc.Glow.W*0.6, th.Primary, 0.3*sc.GlowAlpha, glowLayers)
}

// drawTrail paints transparent -> primary/20 -> transparent.
func drawTrail(dst *ebiten.Image, sc Scene, th ui.Theme) {
	w := sc.Trail.W / gradientStrips
	for i := 0; i < gradientStrips; i++ {
		p := float64(i) / float64(gradientStrips-1)
		a := 0.2 * (1 - math.Abs(2*p-1))
		fillRect(dst, Rect{X: sc.Trail.X + float64(i)*w, Y: sc.Trail.Y, W: w, H: sc.Trail.H}, nrgba(th.Primary, a))
	}
}

// blurOffsets are the ghost copies used to fake a blur.
var blurOffsets = [][2]float64{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-0.7, -0.7}, {0.7, -0.7}, {-0.7, 0.7}, {0.7, 0.7},
}

// drawLabel draws the label clipped to its box, scaled about its center,
// with blur approximated by ghost copies.
func drawLabel(dst *ebiten.Image, sc Scene, label string, src *text.GoTextFaceSource, th ui.Theme) {
	if sc.LabelAlpha <= 0 || label == "" {
		return
	}
	clip, ok := dst.SubImage(rectImage(sc.Label)).(*ebiten.Image)
	if !ok {
		return
	}

	face := &text.GoTextFace{Source: src, Size: LabelSize * sc.Scale}
	w, h := text.Measure(label, face, 0)
	cx, cy := sc.Label.Center()

	draw := func(dx, dy, alpha float64) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(sc.LabelScale, sc.LabelScale)
		op.GeoM.Translate(cx+dx, cy+dy)
		op.ColorScale.ScaleWithColor(nrgba(th.Primary, 1))
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(clip, label, face, op)
	}

	k := 0.0
	if sc.Scale > 0 {
		k = clamp01(sc.LabelBlur / (swipe.LabelBlur * sc.Scale))
	}
	if k == 0 {
		draw(0, 0, sc.LabelAlpha)
		return
	}
	n := float64(len(blurOffsets) + 1)
	draw(0, 0, sc.LabelAlpha*(1-k*(n-1)/n))
	for _, o := range blurOffsets {
		draw(o[0]*sc.LabelBlur, o[1]*sc.LabelBlur, sc.LabelAlpha*k/n)
	}
}

func drawOverlay(dst *ebiten.Image, sc Scene, th ui.Theme) {
	if sc.Overlay.W <= 0 {
		return
	}
	w := sc.Overlay.W / gradientStrips
	for i := 0; i < gradientStrips; i++ {
		p := float64(i) / float64(gradientStrips-1)
		fillRect(dst, Rect{X: sc.Overlay.X + float64(i)*w, Y: sc.Overlay.Y, W: w, H: sc.Overlay.H},
			nrgba(th.Background, swipe.OverlayAlpha(p)))
	}
}

// drawIcon draws the shadowed rounded block and the arrow.
func drawIcon(dst *ebiten.Image, sc Scene, th ui.Theme) {
	cx, cy := sc.Icon.Center()
	drawSoftBlob(dst, cx, cy+ShadowDrop*sc.Scale, sc.Icon.W*0.55, th.Primary, 0.4, shadowLayers)
	fillRoundRect(dst, sc.Icon, IconRadius*sc.Scale, nrgba(th.Primary, 1))

	// Arrow on a 24-unit grid: shaft 5..19 at y=12, head 12,5 -> 19,12 -> 12,19.
	k := ArrowBox / 24 * sc.Scale
	ox, oy := cx-12*k, cy-12*k
	pt := func(x, y float64) (float32, float32) {
		return float32(ox + x*k), float32(oy + y*k)
	}
	stroke := float32(3 * k)
	fg := nrgba(th.Foreground, 1)

	segments := [][4]float64{
		{5, 12, 19, 12},
		{12, 5, 19, 12},
		{19, 12, 12, 19},
	}
	for _, s := range segments {
		x0, y0 := pt(s[0], s[1])
		x1, y1 := pt(s[2], s[3])
		vector.StrokeLine(dst, x0, y0, x1, y1, stroke, fg, true)
	}
	// round caps and joins
	for _, p := range [][2]float64{{5, 12}, {19, 12}, {12, 5}, {12, 19}} {
		x, y := pt(p[0], p[1])
		vector.FillCircle(dst, x, y, stroke/2, fg, true)
	}
}

func rectImage(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}
