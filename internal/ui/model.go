package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// Model is the Bubble Tea host for a swipe animation. Phase changes arrive
// as PhaseMsg (see Bridge); the model retargets its transition and redraws
// at the configured frame rate until the transition settles.
type Model struct {
	anim   *swipe.Animation
	tr     *swipe.Transition
	layout Layout
	theme  Theme
	fps    int
	footer bool

	help help.Model
	bar  progress.Model

	width    int
	height   int
	ticking  bool
	quitting bool

	now func() time.Time
}

// NewModel creates a model for anim. The animation is mounted by Init and
// unmounted when the user quits.
func NewModel(anim *swipe.Animation, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Model{
		anim: anim,
		tr:   swipe.NewTransition(swipe.VisualsFor(anim.Phase()), swipe.TransitionDuration, swipe.SwipeEasing),
		help: help.New(),
		now:  time.Now,
	}
	m.applyConfig(cfg)
	return m
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.layout = LayoutFromConfig(cfg)
	m.theme = ThemeFromConfig(cfg.Theme)
	m.fps = cfg.Terminal.FPS
	if m.fps <= 0 {
		m.fps = config.DefaultConfig().Terminal.FPS
	}
	m.footer = cfg.Terminal.Footer
	m.bar = progress.New(
		progress.WithSolidFill(cfg.Theme.Primary),
		progress.WithWidth(m.layout.Width()),
		progress.WithoutPercentage(),
	)
	m.bar.EmptyColor = cfg.Theme.Muted
}

// Init mounts the animation.
func (m Model) Init() tea.Cmd {
	m.anim.Mount()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, sceneKeys.Quit):
			m.anim.Unmount()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, sceneKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case PhaseMsg:
		m.tr.Retarget(msg.At, swipe.VisualsFor(msg.Phase))
		cmd := m.startFrames()
		return m, cmd

	case ConfigMsg:
		if msg.Config != nil {
			m.applyConfig(msg.Config)
		}

	case frameMsg:
		if m.tr.Done(m.now()) {
			m.ticking = false
			return m, nil
		}
		return m, m.frameCmd()
	}

	return m, nil
}

// View renders the scene, centered when the terminal size is known.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.tr.Sample(m.now())
	content := RenderFrame(v, m.layout, m.theme)
	if m.footer {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			"",
			m.bar.ViewAs(v.OverlayWidth),
			m.phaseLine(),
			m.help.View(sceneKeys),
		)
	}

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Ticking reports whether frame ticks are scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

func (m Model) phaseLine() string {
	symbol, color := SymbolPending, ColorMuted
	if m.anim.Phase() == swipe.Animating {
		symbol, color = SymbolComplete, ColorBrand
	}
	return lipgloss.NewStyle().Foreground(color).Render(symbol) + " " +
		lipgloss.NewStyle().Foreground(ColorMuted).Render(m.anim.Phase().String())
}

// startFrames begins ticking unless a tick is already in flight.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
