package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/swipr/internal/clock"
	"github.com/rileyhilliard/swipr/internal/config"
	swiprerrors "github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/rileyhilliard/swipr/internal/swipe"
)

// RunOptions configures the terminal host.
type RunOptions struct {
	Config *config.Config
	// ConfigPath is watched for live reload when non-empty.
	ConfigPath string
	// Override is applied to every reloaded config, typically to re-apply
	// command-line flags.
	Override   func(*config.Config) error
	AltScreen  bool
	Input      io.Reader
	Output     io.Writer
	Log        logger.Logger
}

// Run mounts a swipe animation on the real clock and renders it until the
// user quits or ctx is cancelled. The animation is unmounted on every exit
// path.
func Run(ctx context.Context, opts RunOptions) error {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	bridge := NewBridge()
	if opts.Override != nil {
		bridge.SetOverride(func(c *config.Config) error {
			if err := opts.Override(c); err != nil {
				log.Warn("ignoring config reload: %v", err)
				return err
			}
			return nil
		})
	}
	anim := swipe.NewAnimation(clock.Real(),
		swipe.WithObserver(bridge.PhaseChanged),
		swipe.WithLogger(log),
	)
	defer anim.Unmount()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(NewModel(anim, cfg), progOpts...)
	bridge.Attach(program)

	if opts.ConfigPath != "" {
		if err := config.Watch(opts.ConfigPath, log, bridge.ConfigChanged); err != nil {
			log.Warn("live reload disabled for %s: %v", opts.ConfigPath, err)
		}
	}

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return swiprerrors.WrapWithCode(err, swiprerrors.ErrRender,
			"Terminal renderer stopped unexpectedly",
			"Try --inline, or check that stdout is a terminal.")
	}
	return nil
}
