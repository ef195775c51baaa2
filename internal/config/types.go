package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .swipr.yaml configuration file.
// It only covers how hosts render the animation; the animation's timing is
// fixed and not configurable.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Label    string         `yaml:"label" mapstructure:"label"`
	Theme    ThemeConfig    `yaml:"theme" mapstructure:"theme"`
	Terminal TerminalConfig `yaml:"terminal" mapstructure:"terminal"`
	Window   WindowConfig   `yaml:"window" mapstructure:"window"`
}

// ThemeConfig holds hex colors ("#RRGGBB").
type ThemeConfig struct {
	// Primary colors the icon block, glow, trail and label.
	Primary string `yaml:"primary" mapstructure:"primary"`

	// Foreground is the arrow glyph color drawn on the primary block.
	Foreground string `yaml:"foreground" mapstructure:"foreground"`

	// Background is the scene background and the color faded labels blend into.
	Background string `yaml:"background" mapstructure:"background"`

	// Muted is the far end of the background gradient and footer text.
	Muted string `yaml:"muted" mapstructure:"muted"`
}

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	// FPS is the redraw rate while a transition is running.
	FPS int `yaml:"fps" mapstructure:"fps"`

	// TravelColumns is how many columns the icon travels (maps the
	// animation's travel distance onto the terminal grid).
	TravelColumns int `yaml:"travel_columns" mapstructure:"travel_columns"`

	// Footer shows phase, reveal progress and key help below the scene.
	Footer bool `yaml:"footer" mapstructure:"footer"`

	// AltScreen runs full screen; false renders inline.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Title  string `yaml:"title" mapstructure:"title"`
}

// DefaultConfig returns a Config with the Swipr look.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Label:   "Swipr",
		Theme: ThemeConfig{
			Primary:    "#1F9BFF",
			Foreground: "#FFFFFF",
			Background: "#0B0F14",
			Muted:      "#1B2A3A",
		},
		Terminal: TerminalConfig{
			FPS:           30,
			TravelColumns: 28,
			Footer:        false,
			AltScreen:     true,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 400,
			Title:  "Swipr",
		},
	}
}
