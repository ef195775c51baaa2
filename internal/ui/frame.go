package ui

import (
	"math"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// Layout sizes the terminal scene.
type Layout struct {
	Label         string
	TravelColumns int
	IconSize      int // arrow glyph rows
	IconWeight    int // arrow stroke weight
}

// DefaultLayout matches DefaultConfig.
func DefaultLayout() Layout {
	return LayoutFromConfig(config.DefaultConfig())
}

// LayoutFromConfig builds a layout from the host config.
func LayoutFromConfig(cfg *config.Config) Layout {
	return Layout{
		Label:         cfg.Label,
		TravelColumns: cfg.Terminal.TravelColumns,
		IconSize:      3,
		IconWeight:    1,
	}
}

// IconWidth is the icon block width: glyph, one cell padding each side, border.
func (l Layout) IconWidth() int {
	return 2*l.IconSize + 4
}

// Height is the scene height in rows.
func (l Layout) Height() int {
	return l.IconSize + 2
}

// labelStart is the column where the label begins, just right of the
// resting icon.
func (l Layout) labelStart() int {
	return l.IconWidth() + 2
}

// labelWidth is the width of the letter-spaced label.
func (l Layout) labelWidth() int {
	n := utf8.RuneCountInString(l.Label)
	if n == 0 {
		return 0
	}
	return 2*n - 1
}

// Width is the scene width in columns.
func (l Layout) Width() int {
	w := l.IconWidth() + l.TravelColumns
	if lw := l.labelStart() + l.labelWidth() + 2; lw > w {
		w = lw
	}
	return w
}

// columns maps animation units onto the terminal grid.
func (l Layout) columns(units float64) int {
	return int(math.Round(units / swipe.TravelDistance * float64(l.TravelColumns)))
}

// RenderFrame draws the scene for one set of visuals. Equal inputs always
// produce equal output.
func RenderFrame(v swipe.Visuals, l Layout, th Theme) string {
	w, h := l.Width(), l.Height()
	cv := newCanvas(w, h, func(x int) colorful.Color {
		if w <= 1 {
			return th.Background
		}
		return blend(th.Background, th.Muted, float64(x)/float64(w-1))
	})

	drawGlow(cv, v, l, th)
	drawTrail(cv, v, l, th)
	drawLabel(cv, v, l, th)
	drawOverlay(cv, v, l, th)
	drawIcon(cv, v, l, th)

	return cv.String()
}

// drawGlow paints a soft primary halo centered on the icon.
func drawGlow(cv *canvas, v swipe.Visuals, l Layout, th Theme) {
	if v.GlowOpacity <= 0 {
		return
	}
	cx := l.columns(v.GlowOffset) + l.IconWidth()/2
	reach := l.IconWidth()/2 + 4
	for y := 0; y < cv.h; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			falloff := 1 - math.Abs(float64(x-cx))/float64(reach+1)
			cv.tintBg(x, y, th.Primary, 0.3*v.GlowOpacity*falloff)
		}
	}
}

// drawTrail paints a faint shimmer band that follows the icon.
func drawTrail(cv *canvas, v swipe.Visuals, l Layout, th Theme) {
	x0 := l.IconWidth() - 2 + l.columns(v.TrailOffset)
	width := l.IconWidth()
	for y := 1; y < cv.h-1; y++ {
		for i := 0; i < width; i++ {
			// transparent -> primary/20 -> transparent
			p := float64(i) / float64(width-1)
			cv.tintBg(x0+i, y, th.Primary, 0.2*(1-math.Abs(2*p-1)))
		}
	}
}

// drawLabel writes the label with opacity, scale and blur applied.
func drawLabel(cv *canvas, v swipe.Visuals, l Layout, th Theme) {
	runes := []rune(l.Label)
	if len(runes) == 0 {
		return
	}
	y := cv.h / 2
	x := l.labelStart()

	step := 2
	if v.LabelScale < 0.95 {
		// Shrunk: drop the letter spacing and center in the original box.
		step = 1
		x += (l.labelWidth() - len(runes)) / 2
	}

	level := 0.0
	if swipe.LabelBlur > 0 {
		level = v.LabelBlur / swipe.LabelBlur
	}

	for i, r := range runes {
		cx := x + i*step
		p := cv.at(cx, y)
		if p == nil {
			continue
		}
		cv.putFg(cx, y, blurGlyph(r, level), blend(p.bg, th.Primary, v.LabelOpacity))
	}
}

// blurGlyph swaps a letter for progressively lighter shade blocks.
func blurGlyph(r rune, level float64) rune {
	if r == ' ' || level < 0.25 {
		return r
	}
	i := int((level - 0.25) / 0.25)
	if i >= len(blurRamp) {
		i = len(blurRamp) - 1
	}
	return blurRamp[i]
}

// drawOverlay fades the label box into the background from the left.
func drawOverlay(cv *canvas, v swipe.Visuals, l Layout, th Theme) {
	width := int(math.Round(v.OverlayWidth * float64(l.labelWidth())))
	if width <= 0 {
		return
	}
	y := cv.h / 2
	x0 := l.labelStart()
	for i := 0; i < width; i++ {
		p := 0.0
		if width > 1 {
			p = float64(i) / float64(width-1)
		}
		alpha := swipe.OverlayAlpha(p)
		if c := cv.at(x0+i, y); c != nil {
			c.fg = blend(c.fg, th.Background, alpha)
			c.bg = blend(c.bg, th.Background, alpha)
		}
	}
}

// drawIcon draws the rounded primary block with the arrow on top of
// everything else.
func drawIcon(cv *canvas, v swipe.Visuals, l Layout, th Theme) {
	x0 := l.columns(v.IconOffset)
	iw, ih := l.IconWidth(), l.Height()
	glyph := ArrowGlyph(l.IconSize, l.IconWeight)

	for y := 0; y < ih; y++ {
		for i := 0; i < iw; i++ {
			x := x0 + i
			p := cv.at(x, y)
			if p == nil {
				continue
			}
			top, bottom := y == 0, y == ih-1
			left, right := i == 0, i == iw-1

			switch {
			case top && left:
				cv.putFg(x, y, boxTopLeft, th.Primary)
			case top && right:
				cv.putFg(x, y, boxTopRight, th.Primary)
			case bottom && left:
				cv.putFg(x, y, boxBottomLeft, th.Primary)
			case bottom && right:
				cv.putFg(x, y, boxBottomRight, th.Primary)
			case top || bottom:
				cv.put(x, y, boxHorizontal, th.Primary, blend(p.bg, th.Primary, 0.5))
			case left || right:
				cv.put(x, y, boxVertical, th.Primary, th.Primary)
			default:
				ch := ' '
				if gy, gx := y-1, i-2; gy >= 0 && gy < len(glyph) && gx >= 0 {
					row := []rune(glyph[gy])
					if gx < len(row) {
						ch = row[gx]
					}
				}
				cv.put(x, y, ch, th.Foreground, th.Primary)
			}
		}
	}
}
