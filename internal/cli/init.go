package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/swipr/internal/config"
	"github.com/rileyhilliard/swipr/internal/errors"
	"github.com/rileyhilliard/swipr/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// primaryChoices are the colors offered by the interactive form.
var primaryChoices = []struct {
	Name string
	Hex  string
}{
	{"Swipr blue", "#1F9BFF"},
	{"Mint", "#2BD9A0"},
	{"Amber", "#FFB020"},
	{"Coral", "#FF5C5C"},
	{"Violet", "#9B6BFF"},
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Label          string // Pre-specified label
	Primary        string // Pre-specified primary color
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

var (
	initLabelFlag          string
	initPrimaryFlag        string
	initForceFlag          bool
	initNonInteractiveFlag bool
)

// initCmd creates a new .swipr.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .swipr.yaml config",
	Long: `Create a .swipr.yaml in the current directory.

Runs a short form when attached to a terminal. If a config already exists
and only --label is given, the label is updated in place and the rest of
the file is left alone.

Examples:
  swipr init
  swipr init --label "Slide" --primary "#2BD9A0"
  swipr init --label "Unlock"
  swipr init --force --non-interactive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().StringVar(&initLabelFlag, "label", "", "text that gets swiped")
	initCmd.Flags().StringVar(&initPrimaryFlag, "primary", "", "primary color as #RRGGBB")
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts and use defaults")
	rootCmd.AddCommand(initCmd)
}

// initCommand is the implementation called by the cobra command.
func initCommand(w io.Writer) error {
	return Init(w, filepath.Join(".", config.ConfigFileName), InitOptions{
		Label:          initLabelFlag,
		Primary:        initPrimaryFlag,
		Overwrite:      initForceFlag,
		NonInteractive: initNonInteractiveFlag || !term.IsTerminal(int(os.Stdin.Fd())),
	})
}

// Init creates or updates the config file at configPath.
func Init(w io.Writer, configPath string, opts InitOptions) error {
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.Label != "" && opts.Primary == "" {
			if err := config.SetLabel(configPath, opts.Label); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Failed to update label in %s", configPath),
					"Check the file is valid YAML, or recreate it with --force")
			}
			fmt.Fprintf(w, "%s Updated label in %s\n", ui.SymbolSuccess, configPath)
			return nil
		}

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite, or --label to change just the label")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", filepath.Base(configPath))).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Label != "" {
		cfg.Label = opts.Label
	}
	if opts.Primary != "" {
		cfg.Theme.Primary = opts.Primary
	}

	if !opts.NonInteractive && opts.Label == "" && opts.Primary == "" {
		if err := runInitForm(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg, true); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  swipr              - Play in the terminal")
	fmt.Fprintln(w, "  swipr window       - Play in a desktop window")
	fmt.Fprintln(w, "  swipr snapshot     - Print a single frame")
	return nil
}

// runInitForm asks for the label and primary color, writing into cfg.
func runInitForm(cfg *config.Config) error {
	options := make([]huh.Option[string], 0, len(primaryChoices))
	for _, c := range primaryChoices {
		options = append(options, huh.NewOption(c.Name+" "+c.Hex, c.Hex))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Description("The text the arrow swipes across").
				Placeholder(cfg.Label).
				Value(&cfg.Label).
				Validate(func(s string) error {
					return config.ValidateLabel(strings.TrimSpace(s))
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Primary color").
				Options(options...).
				Value(&cfg.Theme.Primary),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}
	cfg.Label = strings.TrimSpace(cfg.Label)
	return nil
}
