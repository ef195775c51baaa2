package swipe

// Phase is the binary animation state that drives every visual property.
type Phase int

const (
	// Resting: icon at the start, label fully visible.
	Resting Phase = iota
	// Animating: icon swept across, label faded out.
	Animating
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Resting:
		return "resting"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Next returns the other phase.
func (p Phase) Next() Phase {
	if p == Animating {
		return Resting
	}
	return Animating
}
