package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorBrand)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is selectable; keep the first row from looking highlighted.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

var timelineColumns = []TableColumn{
	{Title: "AT", Width: 10},
	{Title: "PHASE", Width: 12},
	{Title: "HOLD", Width: 8},
	{Title: "ICON", Width: 6},
	{Title: "LABEL", Width: 6},
}

// TimelineRows formats phase changes as table rows. HOLD is the time until
// the next change, blank for the last one.
func TimelineRows(changes []swipe.Change) [][]string {
	rows := make([][]string, len(changes))
	for i, c := range changes {
		hold := ""
		if i+1 < len(changes) {
			hold = formatDuration(changes[i+1].At - c.At)
		}
		target := swipe.VisualsFor(c.Phase)
		rows[i] = []string{
			formatDuration(c.At),
			c.Phase.String(),
			hold,
			fmt.Sprintf("%.0f", target.IconOffset),
			fmt.Sprintf("%.0f%%", target.LabelOpacity*100),
		}
	}
	return rows
}

// RenderTimeline renders phase changes as a table.
func RenderTimeline(changes []swipe.Change) string {
	if len(changes) == 0 {
		return "No phase changes"
	}
	return RenderSimpleTable(timelineColumns, TimelineRows(changes))
}

// formatDuration prints durations the way the timeline reads best:
// milliseconds under a second, otherwise seconds with one decimal.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
