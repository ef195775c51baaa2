package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/rileyhilliard/swipr/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd plays the animation in the terminal
var rootCmd = &cobra.Command{
	Use:   "swipr",
	Short: "A looping swipe-to-continue animation",
	Long: `Swipr plays a looping "swipe to continue" animation: an arrow block glides
across the label while the label fades, shrinks and blurs away, then
everything resets and the loop starts again.

Run without a subcommand to play it full screen in the terminal.

Examples:
  swipr
  swipr --footer --fps 60
  swipr --inline
  swipr window`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDefault(logger.NewEnvLogger("[swipr]"))
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCommand(cmd, playOpts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search for .swipr.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().IntVar(&playOpts.FPS, "fps", 0, "frame rate while animating (default from config)")
	rootCmd.Flags().BoolVar(&playOpts.Footer, "footer", false, "show the status footer")
	rootCmd.Flags().BoolVar(&playOpts.Inline, "inline", false, "render inline instead of on the alternate screen")
}

// Execute runs the root command. Interrupts cancel the command context so
// every host unmounts its animation before exit.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if MachineMode() {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
