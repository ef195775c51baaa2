package gfx

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rileyhilliard/swipr/internal/clock"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/rileyhilliard/swipr/internal/ui"
	"golang.org/x/image/font/gofont/gobold"
)

type phaseEvent struct {
	phase swipe.Phase
	at    time.Time
}

// Game implements ebiten.Game for the swipe scene.
type Game struct {
	anim *swipe.Animation
	now  func() time.Time
	font *text.GoTextFaceSource

	// written by timer and watcher goroutines, drained by Update
	mu      sync.Mutex
	events  []phaseEvent
	pending *config.Config
	stop    atomic.Bool

	// game loop state
	started    bool
	tr         *swipe.Transition
	visuals    swipe.Visuals
	label      string
	labelWidth float64
	theme      ui.Theme
}

// NewGame creates a game whose animation runs on clk. The animation is
// mounted on the first Update.
func NewGame(clk clock.Clock, cfg *config.Config, log logger.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Noop()
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRender,
			"Failed to load the label font",
			"This is a bug; please report it")
	}

	g := &Game{
		now:  clk.Now,
		font: src,
	}
	g.anim = swipe.NewAnimation(clk,
		swipe.WithObserver(g.PhaseChanged),
		swipe.WithLogger(log),
	)
	initial := swipe.VisualsFor(g.anim.Phase())
	g.tr = swipe.NewTransition(initial, swipe.TransitionDuration, swipe.SwipeEasing)
	g.visuals = initial
	g.applyConfig(cfg)
	return g, nil
}

// Animation returns the animation driving the scene.
func (g *Game) Animation() *swipe.Animation {
	return g.anim
}

// PhaseChanged queues a phase change. It has the swipe.Observer signature.
func (g *Game) PhaseChanged(p swipe.Phase, at time.Time) {
	g.mu.Lock()
	g.events = append(g.events, phaseEvent{phase: p, at: at})
	g.mu.Unlock()
}

// ConfigChanged queues a reloaded config.
func (g *Game) ConfigChanged(cfg *config.Config) {
	g.mu.Lock()
	g.pending = cfg
	g.mu.Unlock()
}

// Stop asks the game to exit on the next Update.
func (g *Game) Stop() {
	g.stop.Store(true)
}

// Visuals returns the visuals drawn by the last Update.
func (g *Game) Visuals() swipe.Visuals {
	return g.visuals
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.stop.Load() || ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.anim.Unmount()
		return ebiten.Termination
	}
	g.step(g.now())
	return nil
}

// step applies queued events and samples the transition at now.
func (g *Game) step(now time.Time) {
	if !g.started {
		g.started = true
		g.anim.Mount()
	}

	g.mu.Lock()
	events := g.events
	g.events = nil
	cfg := g.pending
	g.pending = nil
	g.mu.Unlock()

	if cfg != nil {
		g.applyConfig(cfg)
	}
	for _, e := range events {
		g.tr.Retarget(e.at, swipe.VisualsFor(e.phase))
	}
	g.visuals = g.tr.Sample(now)
}

func (g *Game) applyConfig(cfg *config.Config) {
	g.label = cfg.Label
	g.theme = ui.ThemeFromConfig(cfg.Theme)
	g.labelWidth = text.Advance(g.label, &text.GoTextFace{Source: g.font, Size: LabelSize})
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	sc := Compose(g.visuals, b.Dx(), b.Dy(), g.labelWidth)

	drawBackground(screen, g.theme)
	drawLabel(screen, sc, g.label, g.font, g.theme)
	drawOverlay(screen, sc, g.theme)
	drawGlow(screen, sc, g.theme)
	drawTrail(screen, sc, g.theme)
	drawIcon(screen, sc, g.theme)
}

// Layout implements ebiten.Game. The scene scales with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
