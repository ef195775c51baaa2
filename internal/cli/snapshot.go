package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/rileyhilliard/swipr/internal/ui"
	"github.com/spf13/cobra"
)

var snapshotAtFlag time.Duration

// snapshotCmd prints one frame
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a single frame",
	Long: `Print the frame shown --at a given time after mount. The animation runs
on a simulated clock, so the output is the same every time.

Examples:
  swipr snapshot --at 2s
  swipr snapshot --at 3.5s --no-color
  swipr snapshot --at 1s --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		return snapshotCommand(cmd.OutOrStdout(), cfg, snapshotAtFlag)
	},
}

// SnapshotOutput is the JSON output of the snapshot command.
type SnapshotOutput struct {
	AtMS    int64         `json:"at_ms"`
	Phase   string        `json:"phase"`
	Visuals swipe.Visuals `json:"visuals"`
}

func snapshotCommand(w io.Writer, cfg *config.Config, at time.Duration) error {
	if at < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--at %s is negative", at),
			"Use an offset from mount like 1.5s")
	}

	phase, v := swipe.SampleAt(swipe.DefaultSchedule(), at)

	if MachineMode() {
		return WriteJSONSuccess(w, SnapshotOutput{
			AtMS:    at.Milliseconds(),
			Phase:   phase.String(),
			Visuals: v,
		})
	}

	fmt.Fprintln(w, ui.RenderFrame(v, ui.LayoutFromConfig(cfg), ui.ThemeFromConfig(cfg.Theme)))
	fmt.Fprintf(w, "%s %s at %s\n", ui.SymbolArrow, phase, at)
	return nil
}

func init() {
	snapshotCmd.Flags().DurationVar(&snapshotAtFlag, "at", 0, "offset from mount")
	addJSONFlag(snapshotCmd)
	rootCmd.AddCommand(snapshotCmd)
}
