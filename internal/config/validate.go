package config

import (
	"fmt"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/swipr/internal/errors"
)

// Limits for host rendering settings.
const (
	MaxLabelLength   = 24
	MinFPS           = 1
	MaxFPS           = 120
	MinTravelColumns = 4
	MaxTravelColumns = 200
	MinWindowWidth   = 320
	MinWindowHeight  = 160
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but swipr only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade swipr or lower the version field")
	}

	if err := ValidateLabel(cfg.Label); err != nil {
		return err
	}
	if err := validateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := validateTerminal(cfg.Terminal); err != nil {
		return err
	}
	return validateWindow(cfg.Window)
}

// labelWidth measures with East Asian ambiguous runes as narrow, whatever
// the locale says.
var labelWidth = &runewidth.Condition{EastAsianWidth: false}

// ValidateLabel checks a label is non-empty, within MaxLabelLength, and
// made of runes that each take exactly one terminal cell.
func ValidateLabel(label string) error {
	if label == "" {
		return errors.New(errors.ErrConfig,
			"Label is empty",
			"Set 'label' to the text that gets swiped, e.g. label: Swipr")
	}
	if n := utf8.RuneCountInString(label); n > MaxLabelLength {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Label is %d characters, the limit is %d", n, MaxLabelLength),
			"Use a shorter label")
	}
	for _, r := range label {
		if w := labelWidth.RuneWidth(r); w != 1 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Label character %q is %d cells wide", r, w),
				"Use characters that take one terminal cell each (no wide, combining or control characters)")
		}
	}
	return nil
}

func validateTheme(th ThemeConfig) error {
	colors := []struct {
		field string
		value string
	}{
		{"theme.primary", th.Primary},
		{"theme.foreground", th.Foreground},
		{"theme.background", th.Background},
		{"theme.muted", th.Muted},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.value); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("%s '%s' isn't a hex color", c.field, c.value),
				"Use the #RRGGBB form, e.g. #1F9BFF")
		}
	}
	return nil
}

func validateTerminal(tc TerminalConfig) error {
	if tc.FPS < MinFPS || tc.FPS > MaxFPS {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("terminal.fps %d is out of range", tc.FPS),
			fmt.Sprintf("Pick a frame rate between %d and %d", MinFPS, MaxFPS))
	}
	if tc.TravelColumns < MinTravelColumns || tc.TravelColumns > MaxTravelColumns {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("terminal.travel_columns %d is out of range", tc.TravelColumns),
			fmt.Sprintf("Pick a value between %d and %d", MinTravelColumns, MaxTravelColumns))
	}
	return nil
}

func validateWindow(wc WindowConfig) error {
	if wc.Width < MinWindowWidth || wc.Height < MinWindowHeight {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Window size %dx%d is too small", wc.Width, wc.Height),
			fmt.Sprintf("Use at least %dx%d", MinWindowWidth, MinWindowHeight))
	}
	return nil
}
