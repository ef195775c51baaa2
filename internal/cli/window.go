package cli

import (
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/gfx"
	"github.com/rileyhilliard/swipr/internal/logger"
	"github.com/spf13/cobra"
)

var (
	windowWidthFlag  int
	windowHeightFlag int
)

// windowCmd plays the animation in a desktop window
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play the animation in a desktop window",
	Long: `Open a window and play the animation with smooth vector rendering.

Close the window or press Esc or Q to quit.

Examples:
  swipr window
  swipr window --width 1280 --height 480`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		if err := applyWindowFlags(cmd, cfg); err != nil {
			return err
		}
		return gfx.Run(cmd.Context(), gfx.RunOptions{
			Config:     cfg,
			ConfigPath: path,
			Log:        logger.Default(),
		})
	},
}

func applyWindowFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = windowWidthFlag
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = windowHeightFlag
	}
	return config.Validate(cfg)
}

func init() {
	windowCmd.Flags().IntVar(&windowWidthFlag, "width", 0, "window width in pixels (default from config)")
	windowCmd.Flags().IntVar(&windowHeightFlag, "height", 0, "window height in pixels (default from config)")
	rootCmd.AddCommand(windowCmd)
}
