package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/rileyhilliard/swipr/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives log output while a full-screen host owns the
// terminal and SWIPR_DEBUG is set.
const debugLogFile = "swipr-debug.log"

// PlayOptions holds the terminal host flags.
type PlayOptions struct {
	FPS    int
	Footer bool
	Inline bool
}

var playOpts PlayOptions

// applyPlayFlags overrides config values with flags the user actually set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config, opts PlayOptions) error {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Terminal.FPS = opts.FPS
	}
	if flags.Changed("footer") {
		cfg.Terminal.Footer = opts.Footer
	}
	if flags.Changed("inline") {
		cfg.Terminal.AltScreen = !opts.Inline
	}
	return config.Validate(cfg)
}

func playCommand(cmd *cobra.Command, opts PlayOptions) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := applyPlayFlags(cmd, cfg, opts); err != nil {
		return err
	}

	// Non-TTY: there is nothing to animate on, print the resting frame.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderFrame(swipe.VisualsFor(swipe.Resting), ui.LayoutFromConfig(cfg), ui.ThemeFromConfig(cfg.Theme)))
		return nil
	}

	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "swipr")
		if err == nil {
			defer f.Close()
			log = logger.NewEnvLogger("[swipr]")
		}
	}

	// Reloads come straight from the file; put the flags back on top.
	override := func(c *config.Config) error {
		return applyPlayFlags(cmd, c, opts)
	}

	return ui.Run(cmd.Context(), ui.RunOptions{
		Config:     cfg,
		ConfigPath: path,
		Override:   override,
		AltScreen:  cfg.Terminal.AltScreen,
		Log:        log,
	})
}
