package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Completed successfully
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Resting phase
	SymbolProgress = "◐" // Transition running
	SymbolComplete = "●" // Animating phase
	SymbolArrow    = "→"
)

// Box drawing for the rounded icon block.
const (
	boxTopLeft     = '╭'
	boxTopRight    = '╮'
	boxBottomLeft  = '╰'
	boxBottomRight = '╯'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// Shade ramp used to fake blur, lightest last.
var blurRamp = []rune{'▓', '▒', '░'}

const glyphInk = '█'
