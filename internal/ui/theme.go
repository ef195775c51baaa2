package ui

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/swipr/internal/config"
)

// Theme holds the scene colors in a blendable form.
type Theme struct {
	Primary    colorful.Color
	Foreground colorful.Color
	Background colorful.Color
	Muted      colorful.Color
}

// ThemeFromConfig parses the configured hex colors. Config validation has
// already rejected bad values; anything unparsable falls back to the
// default theme's color.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	def := config.DefaultConfig().Theme
	return Theme{
		Primary:    parseHex(tc.Primary, def.Primary),
		Foreground: parseHex(tc.Foreground, def.Foreground),
		Background: parseHex(tc.Background, def.Background),
		Muted:      parseHex(tc.Muted, def.Muted),
	}
}

// DefaultTheme is the Swipr blue on near-black.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultConfig().Theme)
}

func parseHex(value, fallback string) colorful.Color {
	if c, err := colorful.Hex(value); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

// blend mixes a toward b by t in [0,1], in Lab space so fades stay even.
func blend(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendLab(b, t).Clamped()
}
