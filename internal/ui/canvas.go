package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// cell is one terminal character with its colors.
type cell struct {
	ch rune
	fg colorful.Color
	bg colorful.Color
}

// canvas is a fixed-size grid that scene layers paint onto back to front.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int, bg func(x int) colorful.Color) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			b := bg(x)
			row[x] = cell{ch: ' ', fg: b, bg: b}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) at(x, y int) *cell {
	if !c.in(x, y) {
		return nil
	}
	return &c.cells[y][x]
}

// tintBg blends the background of a cell toward col.
func (c *canvas) tintBg(x, y int, col colorful.Color, amount float64) {
	if p := c.at(x, y); p != nil {
		p.bg = blend(p.bg, col, amount)
		if p.ch == ' ' {
			p.fg = p.bg
		}
	}
}

// put writes a character with explicit colors.
func (c *canvas) put(x, y int, ch rune, fg, bg colorful.Color) {
	if p := c.at(x, y); p != nil {
		*p = cell{ch: ch, fg: fg, bg: bg}
	}
}

// putFg writes a character keeping the cell's background.
func (c *canvas) putFg(x, y int, ch rune, fg colorful.Color) {
	if p := c.at(x, y); p != nil {
		p.ch = ch
		p.fg = fg
	}
}

// String renders rows, grouping runs of identical colors into one style.
func (c *canvas) String() string {
	var out strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			out.WriteString(renderRun(row[start:x]))
			start = x
		}
	}
	return out.String()
}

func sameStyle(a, b cell) bool {
	return a.fg.Hex() == b.fg.Hex() && a.bg.Hex() == b.bg.Hex()
}

func renderRun(run []cell) string {
	if len(run) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range run {
		b.WriteRune(c.ch)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(run[0].fg.Hex())).
		Background(lipgloss.Color(run[0].bg.Hex())).
		Render(b.String())
}
