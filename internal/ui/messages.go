package ui

import (
	"time"

	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// PhaseMsg signals the animation entered a new phase.
type PhaseMsg struct {
	Phase swipe.Phase
	At    time.Time
}

// ConfigMsg signals the config file was reloaded.
type ConfigMsg struct {
	Config *config.Config
}

// frameMsg drives redraws while a transition is running.
type frameMsg time.Time
