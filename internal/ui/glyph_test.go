package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrowGlyph(t *testing.T) {
	got := ArrowGlyph(3, 1)
	assert.Equal(t, []string{
		"  ██  ",
		" █████",
		"  ██  ",
	}, got)
}

func TestArrowGlyph_Dimensions(t *testing.T) {
	for size := 1; size <= 7; size++ {
		rows := ArrowGlyph(size, 2)
		assert.Len(t, rows, size)
		for _, r := range rows {
			assert.Len(t, []rune(r), 2*size)
		}
	}
}

func TestArrowGlyph_TipOnCenterRow(t *testing.T) {
	rows := ArrowGlyph(5, 1)
	mid := []rune(rows[2])
	assert.Equal(t, glyphInk, mid[len(mid)-1])
	for i, r := range rows {
		if i == 2 {
			continue
		}
		last := []rune(r)
		assert.Equal(t, ' ', last[len(last)-1], "row %d", i)
	}
}

func TestArrowGlyph_Degenerate(t *testing.T) {
	assert.Nil(t, ArrowGlyph(0, 1))
	assert.Equal(t, ArrowGlyph(3, 1), ArrowGlyph(3, 0), "weight clamps up to 1")
	assert.Equal(t, ArrowGlyph(3, 3), ArrowGlyph(3, 9), "weight clamps down to size")
}
