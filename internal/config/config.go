package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Themes are the catppuccin flavors the bar can be painted with.
var Themes = []string{"latte", "frappe", "macchiato", "mocha"}

// LogLevels are the accepted values for log_level.
var LogLevels = []string{"trace", "debug", "info", "error"}

var (
	// ErrUnknownTheme is returned for a theme outside Themes.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrUnknownLogLevel is returned for a log level outside LogLevels.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config represents ~/.config/compactbar/config.yaml. The same keys can be
// passed by the host as the plugin's configuration map.
type Config struct {
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	ShowMode bool   `yaml:"show_mode"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Theme:    "mocha",
		LogLevel: "info",
		ShowMode: true,
	}
}

// Parse parses config.yaml bytes on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// FromMap overlays the host's plugin configuration on base. Unknown keys are
// ignored.
func FromMap(base Config, m map[string]string) (Config, error) {
	cfg := base
	if v, ok := m["theme"]; ok {
		cfg.Theme = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := m["log_level"]; ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := m["show_mode"]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parsing show_mode %q: %w", v, err)
		}
		cfg.ShowMode = b
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is one the bar understands.
func (c Config) Validate() error {
	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return nil
}
