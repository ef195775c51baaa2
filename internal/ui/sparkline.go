package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline maps each value onto 8 levels between lo and hi. Values
// outside the range are clamped; an empty range renders the lowest level.
func RenderSparkline(data []float64, lo, hi float64) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	span := hi - lo
	for _, v := range data {
		level := 0
		if span > 0 {
			level = int((v - lo) / span * float64(numLevels-1))
		}
		if level < 0 {
			level = 0
		} else if level >= numLevels {
			level = numLevels - 1
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return lipgloss.NewStyle().Foreground(ColorBrand).Render(sb.String())
}

// IconCurve samples the displayed icon offset at n evenly spaced points in
// [0, until]. Each point is an independent deterministic simulation.
func IconCurve(sched swipe.Schedule, until time.Duration, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		at := time.Duration(0)
		if n > 1 {
			at = until * time.Duration(i) / time.Duration(n-1)
		}
		_, v := swipe.SampleAt(sched, at)
		out[i] = v.IconOffset
	}
	return out
}
