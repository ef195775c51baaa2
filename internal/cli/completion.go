package cli

import (
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for swipr.

Examples:
  # Bash
  swipr completion bash > /etc/bash_completion.d/swipr

  # Zsh
  swipr completion zsh > "${fpath[1]}/_swipr"

  # Fish
  swipr completion fish > ~/.config/fish/completions/swipr.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var err error
		switch args[0] {
		case "bash":
			err = rootCmd.GenBashCompletion(out)
		case "zsh":
			err = rootCmd.GenZshCompletion(out)
		case "fish":
			err = rootCmd.GenFishCompletion(out, true)
		case "powershell":
			err = rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
		if err != nil {
			return errors.Wrap(err, "Failed to write the "+args[0]+" completion script")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
