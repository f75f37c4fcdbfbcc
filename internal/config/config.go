// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/format"
	"github.com/hy4ri/datepicker-tui/internal/locale"
	"github.com/hy4ri/datepicker-tui/internal/picker"
	"github.com/hy4ri/datepicker-tui/internal/rangepolicy"
)

const appName = "datepicker-tui"

// Config represents the application configuration.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	UI     UIConfig     `yaml:"ui"`
	Server ServerConfig `yaml:"server"`
}

// PickerConfig holds the date picker behaviour.
type PickerConfig struct {
	Format         string      `yaml:"format"`
	FirstDayOfWeek int         `yaml:"first_day_of_week"` // 0 = Sunday
	DayNameLength  int         `yaml:"day_name_length"`
	Jump           string      `yaml:"jump"` // "absolute" or "relative"
	Locale         string      `yaml:"locale"`
	AllowWeekends  bool        `yaml:"allow_weekends"`
	Min            string      `yaml:"min,omitempty"`
	Max            string      `yaml:"max,omitempty"`
	Disallow       []string    `yaml:"disallow,omitempty"`
	Text           picker.Text `yaml:"text"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode        bool   `yaml:"vim_mode"`
	CopyOnSelect   bool   `yaml:"copy_on_select"`
	NotifyOnSelect bool   `yaml:"notify_on_select"`
	LocalesFile    string `yaml:"locales_file,omitempty"`
	DebugLog       string `yaml:"debug_log,omitempty"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			Format:         format.DefaultPattern,
			FirstDayOfWeek: 1,
			DayNameLength:  2,
			Jump:           picker.JumpAbsolute.String(),
			Locale:         locale.DefaultLanguage,
			AllowWeekends:  true,
			Text:           picker.DefaultText(),
		},
		UI: UIConfig{
			VimMode: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a configuration validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks every picker setting and returns the first problem.
func (c *Config) Validate() error {
	p := c.Picker
	if _, err := format.Compile(p.Format); err != nil {
		return &ValidationError{Field: "picker.format", Message: err.Error()}
	}
	if p.FirstDayOfWeek < 0 || p.FirstDayOfWeek > 6 {
		return &ValidationError{Field: "picker.first_day_of_week", Message: fmt.Sprintf("%d is not in 0..6", p.FirstDayOfWeek)}
	}
	if p.DayNameLength < 1 {
		return &ValidationError{Field: "picker.day_name_length", Message: "must be at least 1"}
	}
	if _, err := picker.ParseJumpPolicy(p.Jump); err != nil {
		return &ValidationError{Field: "picker.jump", Message: err.Error()}
	}
	if p.Locale != "" && locale.Normalize(p.Locale) == "" {
		return &ValidationError{Field: "picker.locale", Message: fmt.Sprintf("%q is not a language tag", p.Locale)}
	}
	if p.Min != "" && !calendar.IsValidISO(p.Min) {
		return &ValidationError{Field: "picker.min", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", p.Min)}
	}
	if p.Max != "" && !calendar.IsValidISO(p.Max) {
		return &ValidationError{Field: "picker.max", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", p.Max)}
	}
	for _, iso := range p.Disallow {
		if !calendar.IsValidISO(iso) {
			return &ValidationError{Field: "picker.disallow", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", iso)}
		}
	}
	return nil
}

// Warnings lists settings that are accepted but probably unintended.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.Picker.Min != "" && c.Picker.Max != "" && c.Picker.Min > c.Picker.Max {
		warnings = append(warnings, fmt.Sprintf("picker.min %s is after picker.max %s; the minimum takes precedence", c.Picker.Min, c.Picker.Max))
	}
	return warnings
}

// Pattern compiles the configured format.
func (c *Config) Pattern() (*format.Pattern, error) {
	return format.Compile(c.Picker.Format)
}

// FirstDayOfWeek returns the configured week start.
func (c *Config) FirstDayOfWeek() time.Weekday {
	return time.Weekday(c.Picker.FirstDayOfWeek)
}

// RangePolicy builds the range policy from the picker settings.
func (c *Config) RangePolicy() (*rangepolicy.Policy, error) {
	opts := []rangepolicy.Option{rangepolicy.WithWeekends(c.Picker.AllowWeekends)}

	if c.Picker.Min != "" {
		d, err := calendar.Parse(c.Picker.Min)
		if err != nil {
			return nil, fmt.Errorf("picker.min: %w", err)
		}
		opts = append(opts, rangepolicy.WithMin(d))
	}
	if c.Picker.Max != "" {
		d, err := calendar.Parse(c.Picker.Max)
		if err != nil {
			return nil, fmt.Errorf("picker.max: %w", err)
		}
		opts = append(opts, rangepolicy.WithMax(d))
	}

	disallowed := make([]calendar.Date, 0, len(c.Picker.Disallow))
	for _, iso := range c.Picker.Disallow {
		d, err := calendar.Parse(iso)
		if err != nil {
			return nil, fmt.Errorf("picker.disallow: %w", err)
		}
		disallowed = append(disallowed, d)
	}
	opts = append(opts, rangepolicy.WithDisallowed(disallowed...))

	return rangepolicy.New(opts...), nil
}

// Names returns the name provider, overlaying ui.locales_file on the
// built-in tables when set.
func (c *Config) Names() (*locale.Names, error) {
	if c.UI.LocalesFile == "" {
		return locale.New(nil), nil
	}

	f, err := os.Open(expandHome(c.UI.LocalesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open locales file: %w", err)
	}
	defer f.Close()

	tables, err := locale.LoadTables(f)
	if err != nil {
		return nil, err
	}
	return locale.New(locale.Builtin.Merge(tables)), nil
}

// Layout binds the configured format to the configured locale.
func (c *Config) Layout() (format.Layout, error) {
	pattern, err := c.Pattern()
	if err != nil {
		return format.Layout{}, err
	}
	names, err := c.Names()
	if err != nil {
		return format.Layout{}, err
	}
	return format.NewEngine(names, c.Picker.Locale).Layout(pattern), nil
}

// PickerOptions builds controller options. clock may be nil.
func (c *Config) PickerOptions(clock calendar.Clock) (picker.Options, error) {
	policy, err := c.RangePolicy()
	if err != nil {
		return picker.Options{}, err
	}
	jump, err := picker.ParseJumpPolicy(c.Picker.Jump)
	if err != nil {
		return picker.Options{}, err
	}
	return picker.Options{
		FirstDayOfWeek: c.FirstDayOfWeek(),
		Jump:           jump,
		Policy:         policy,
		Clock:          clock,
	}, nil
}

// Text returns the labels with defaults filled in.
func (c *Config) Text() picker.Text {
	return c.Picker.Text.WithDefaults()
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
