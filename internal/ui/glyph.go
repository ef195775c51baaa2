package ui

import "strings"

// ArrowGlyph draws a right-pointing arrow in a grid of size rows by 2*size
// columns (terminal cells are roughly twice as tall as wide). weight is the
// stroke thickness in rows; it is clamped to [1, size].
//
// Blank cells are spaces, ink cells are '█'.
func ArrowGlyph(size, weight int) []string {
	if size <= 0 {
		return nil
	}
	if weight < 1 {
		weight = 1
	}
	if weight > size {
		weight = size
	}

	cols := 2 * size
	mid := size / 2
	half := (weight - 1) / 2
	tip := cols - 1

	rows := make([]string, size)
	for r := 0; r < size; r++ {
		d := r - mid
		if d < 0 {
			d = -d
		}

		var b strings.Builder
		b.Grow(cols * 3)
		for c := 0; c < cols; c++ {
			shaft := d <= half && c >= 1 && c < tip
			headCol := tip - 2*d
			head := c <= headCol && c > headCol-2*weight
			if shaft || head {
				b.WriteRune(glyphInk)
			} else {
				b.WriteByte(' ')
			}
		}
		rows[r] = b.String()
	}
	return rows
}
