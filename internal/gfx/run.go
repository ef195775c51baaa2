package gfx

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rileyhilliard/swipr/internal/clock"
	"github.com/rileyhilliard/swipr/internal/config"
	swiprerrors "github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/logger"
)

// RunOptions configures the window host.
type RunOptions struct {
	Config *config.Config
	// ConfigPath is watched for live reload when non-empty.
	ConfigPath string
	Log        logger.Logger
}

// Run opens a window and plays the animation until it is closed, Esc or
// Q is pressed, or ctx is cancelled. It must be called from the main
// goroutine.
func Run(ctx context.Context, opts RunOptions) error {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	game, err := NewGame(clock.Real(), cfg, log)
	if err != nil {
		return err
	}
	defer game.Animation().Unmount()

	if opts.ConfigPath != "" {
		if err := config.Watch(opts.ConfigPath, log, game.ConfigChanged); err != nil {
			log.Warn("live reload disabled for %s: %v", opts.ConfigPath, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		game.Stop()
	}()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return swiprerrors.WrapWithCode(err, swiprerrors.ErrRender,
			"Window renderer failed",
			"Check that a display is available, or use the terminal renderer instead")
	}
	return nil
}
