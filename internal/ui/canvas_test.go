package ui

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/stretchr/testify/assert"
)

func solid(c colorful.Color) func(int) colorful.Color {
	return func(int) colorful.Color { return c }
}

func TestCanvas_String(t *testing.T) {
	plainOutput(t)
	th := DefaultTheme()
	cv := newCanvas(4, 2, solid(th.Background))

	cv.put(0, 0, 'a', th.Foreground, th.Primary)
	cv.putFg(3, 1, 'b', th.Primary)

	assert.Equal(t, "a   \n   b", cv.String())
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	cv := newCanvas(2, 2, solid(DefaultTheme().Background))

	assert.NotPanics(t, func() {
		cv.put(-1, 0, 'x', colorful.Color{}, colorful.Color{})
		cv.putFg(2, 0, 'x', colorful.Color{})
		cv.tintBg(0, 5, colorful.Color{}, 1)
	})
	assert.Nil(t, cv.at(2, 2))
}

func TestCanvas_TintBg(t *testing.T) {
	th := DefaultTheme()
	cv := newCanvas(1, 1, solid(th.Background))

	cv.tintBg(0, 0, th.Primary, 1)

	c := cv.at(0, 0)
	assert.Equal(t, th.Primary.Hex(), c.bg.Hex())
	assert.Equal(t, c.bg.Hex(), c.fg.Hex(), "blank cells keep fg matched to bg")
}

func TestBlend(t *testing.T) {
	th := DefaultTheme()

	assert.Equal(t, th.Background, blend(th.Background, th.Primary, 0))
	assert.Equal(t, th.Primary, blend(th.Background, th.Primary, 1))
	assert.Equal(t, th.Primary, blend(th.Background, th.Primary, 2))

	mid := blend(th.Background, th.Primary, 0.5)
	assert.NotEqual(t, th.Background.Hex(), mid.Hex())
	assert.NotEqual(t, th.Primary.Hex(), mid.Hex())
}

func TestThemeFromConfig_FallsBack(t *testing.T) {
	def := DefaultTheme()
	th := ThemeFromConfig(config.ThemeConfig{Primary: "not-a-color"})

	assert.Equal(t, def.Primary.Hex(), th.Primary.Hex())
}
