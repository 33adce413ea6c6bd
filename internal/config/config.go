// Package config provides configuration types and defaults for pickr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/pickr/internal/log"
	"github.com/zjrosen/pickr/internal/picker"
	"github.com/zjrosen/pickr/internal/result"
)

// KeyDelimiter separates nested viper keys. Dots are left free so color
// tokens like "text.primary" stay single keys under theme.colors.
const KeyDelimiter = "::"

// DefaultEmptyMessage is shown when a pick is requested with no choices.
const DefaultEmptyMessage = "Add some options first 📝"

// Limits accepted by Validate.
const (
	MaxFlashes  = 500
	MaxInterval = 5 * time.Second
)

// Config holds all configuration options for pickr.
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	Copy   CopyConfig   `mapstructure:"copy"`
	UI     UIConfig     `mapstructure:"ui"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// PickerConfig holds the shuffle animation timings.
type PickerConfig struct {
	Flashes  int           `mapstructure:"flashes"`  // Flash steps before settling
	Interval time.Duration `mapstructure:"interval"` // Delay between flashes
	Settle   time.Duration `mapstructure:"settle"`   // Pause before the final pick
}

// CopyConfig holds clipboard options.
type CopyConfig struct {
	ConfirmDuration time.Duration `mapstructure:"confirm_duration"` // How long "Copied!" stays up
	OSC52           bool          `mapstructure:"osc52"`            // Use OSC52 in SSH/tmux/screen sessions
}

// UIConfig holds user interface options.
type UIConfig struct {
	EmptyMessage string `mapstructure:"empty_message"` // Shown when picking with no choices
	Placeholder  string `mapstructure:"placeholder"`   // Result glyph when there is no pick
	Mouse        bool   `mapstructure:"mouse"`         // Enable clickable buttons
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens, keyed by dotted token name:
	//   colors:
	//     tag.active.bg: "#FF79C6"
	Colors map[string]string `mapstructure:"colors"`
}

// Defaults returns a Config with the standard timings and labels.
func Defaults() Config {
	return Config{
		Picker: PickerConfig{
			Flashes:  picker.DefaultFlashes,
			Interval: picker.DefaultInterval,
			Settle:   picker.DefaultSettle,
		},
		Copy: CopyConfig{
			ConfirmDuration: 900 * time.Millisecond,
			OSC52:           true,
		},
		UI: UIConfig{
			EmptyMessage: DefaultEmptyMessage,
			Placeholder:  result.DefaultPlaceholder,
			Mouse:        true,
		},
	}
}

// Animation converts the picker section to picker.Config.
func (c Config) Animation() picker.Config {
	return picker.Config{
		Flashes:  c.Picker.Flashes,
		Interval: c.Picker.Interval,
		Settle:   c.Picker.Settle,
	}
}

// Validate checks configuration values for errors.
func Validate(c Config) error {
	var errs []error

	if c.Picker.Flashes < 0 || c.Picker.Flashes > MaxFlashes {
		errs = append(errs, fmt.Errorf("picker.flashes must be between 0 and %d, got %d", MaxFlashes, c.Picker.Flashes))
	}
	if c.Picker.Flashes > 0 && (c.Picker.Interval <= 0 || c.Picker.Interval > MaxInterval) {
		errs = append(errs, fmt.Errorf("picker.interval must be greater than 0 and at most %s, got %s", MaxInterval, c.Picker.Interval))
	}
	if c.Picker.Settle < 0 || c.Picker.Settle > MaxInterval {
		errs = append(errs, fmt.Errorf("picker.settle must be between 0 and %s, got %s", MaxInterval, c.Picker.Settle))
	}
	if c.Copy.ConfirmDuration <= 0 {
		errs = append(errs, fmt.Errorf("copy.confirm_duration must be greater than 0, got %s", c.Copy.ConfirmDuration))
	}

	return errors.Join(errs...)
}

// NewViper returns a viper instance using KeyDelimiter with every default set.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetDefaults(v)
	return v
}

// SetDefaults registers Defaults() on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(Key("picker", "flashes"), d.Picker.Flashes)
	v.SetDefault(Key("picker", "interval"), d.Picker.Interval)
	v.SetDefault(Key("picker", "settle"), d.Picker.Settle)
	v.SetDefault(Key("copy", "confirm_duration"), d.Copy.ConfirmDuration)
	v.SetDefault(Key("copy", "osc52"), d.Copy.OSC52)
	v.SetDefault(Key("ui", "empty_message"), d.UI.EmptyMessage)
	v.SetDefault(Key("ui", "placeholder"), d.UI.Placeholder)
	v.SetDefault(Key("ui", "mouse"), d.UI.Mouse)
	v.SetDefault(Key("theme", "preset"), d.Theme.Preset)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Key joins path segments with KeyDelimiter, e.g. Key("picker", "flashes").
func Key(parts ...string) string {
	return strings.Join(parts, KeyDelimiter)
}

// LocalConfigPath is the per-directory config location.
const LocalConfigPath = ".pickr/config.yaml"

// DefaultConfigPath returns ~/.config/pickr/config.yaml, or LocalConfigPath
// when the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return LocalConfigPath
	}
	return filepath.Join(home, ".config", "pickr", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# pickr configuration

# Shuffle animation
picker:
  flashes: 20       # Highlight steps before the final pick (0 picks straight away)
  interval: 80ms    # Delay between highlight steps
  settle: 120ms     # Pause between the last step and the final pick

# Copy button
copy:
  confirm_duration: 900ms  # How long the button reads "Copied!"
  osc52: true              # Copy through the terminal when running over SSH/tmux/screen

# UI settings
ui:
  empty_message: "Add some options first 📝"
  placeholder: "—"   # Shown in the result line before the first pick
  mouse: true        # Clickable buttons

# Theme configuration
theme:
  preset: ""   # Built-in base theme; run 'pickr themes' to list them
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   tag.active.bg: "#FF79C6"
  #   result.text: "#50FA7B"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
