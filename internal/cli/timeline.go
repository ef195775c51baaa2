package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/swipe"
	"github.com/rileyhilliard/swipr/internal/ui"
	"github.com/spf13/cobra"
)

// curveSamples is the sparkline width for --curve.
const curveSamples = 60

var (
	timelineUntilFlag time.Duration
	timelineCurveFlag bool
)

// timelineCmd prints when the phase changes
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the phase change timeline",
	Long: `Print every phase change from mount up to --until, computed on a
simulated clock.

Examples:
  swipr timeline
  swipr timeline --until 30s
  swipr timeline --curve
  swipr timeline --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return timelineCommand(cmd.OutOrStdout(), swipe.DefaultSchedule(), timelineUntilFlag, timelineCurveFlag)
	},
}

// TimelineChange is one row of timeline JSON output.
type TimelineChange struct {
	AtMS  int64  `json:"at_ms"`
	Phase string `json:"phase"`
}

// TimelineOutput is the JSON output of the timeline command.
type TimelineOutput struct {
	PeriodMS int64            `json:"period_ms"`
	UntilMS  int64            `json:"until_ms"`
	Changes  []TimelineChange `json:"changes"`
}

func timelineCommand(w io.Writer, sched swipe.Schedule, until time.Duration, curve bool) error {
	if until < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--until %s is negative", until),
			"Use a positive duration like 10s")
	}

	changes := sched.Boundaries(until)

	if MachineMode() {
		out := TimelineOutput{
			PeriodMS: sched.Period().Milliseconds(),
			UntilMS:  until.Milliseconds(),
			Changes:  make([]TimelineChange, len(changes)),
		}
		for i, c := range changes {
			out.Changes[i] = TimelineChange{AtMS: c.At.Milliseconds(), Phase: c.Phase.String()}
		}
		return WriteJSONSuccess(w, out)
	}

	fmt.Fprintln(w, ui.RenderTimeline(changes))
	if curve {
		fmt.Fprintf(w, "\nicon %s\n", ui.RenderSparkline(ui.IconCurve(sched, until, curveSamples), 0, swipe.TravelDistance))
	}
	return nil
}

func init() {
	timelineCmd.Flags().DurationVar(&timelineUntilFlag, "until", 10*time.Second, "how far past mount to list changes")
	timelineCmd.Flags().BoolVar(&timelineCurveFlag, "curve", false, "also plot the icon position over time")
	addJSONFlag(timelineCmd)
	rootCmd.AddCommand(timelineCmd)
}
