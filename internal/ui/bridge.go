package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards animation and config events to a Bubble Tea program
// via Send. It is goroutine-safe; events before Attach are dropped.
type Bridge struct {
	mu       sync.Mutex
	program  Sender
	override func(*config.Config) error
}

// NewBridge creates an unattached bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the program events are sent to.
func (b *Bridge) Attach(p Sender) {
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()
}

// SetOverride registers a hook run on every reloaded config before it is
// forwarded, so settings given on the command line survive a reload. A
// reload the hook rejects is dropped.
func (b *Bridge) SetOverride(fn func(*config.Config) error) {
	b.mu.Lock()
	b.override = fn
	b.mu.Unlock()
}

// PhaseChanged forwards a phase change. It has the swipe.Observer signature.
func (b *Bridge) PhaseChanged(p swipe.Phase, at time.Time) {
	b.send(PhaseMsg{Phase: p, At: at})
}

// ConfigChanged forwards a reloaded config.
func (b *Bridge) ConfigChanged(cfg *config.Config) {
	b.mu.Lock()
	override := b.override
	b.mu.Unlock()
	if override != nil && cfg != nil {
		if err := override(cfg); err != nil {
			return
		}
	}
	b.send(ConfigMsg{Config: cfg})
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}
