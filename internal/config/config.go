// Package config loads the calculator's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything the shell reads at startup. The evaluator itself
// is not configurable.
type Config struct {
	// HistorySize is the maximum number of history entries retained.
	// Default: 50
	HistorySize int `yaml:"history_size"`

	// Accent is the lipgloss color used for focused and highlighted
	// elements. Default: "212"
	Accent string `yaml:"accent"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures debug logging. A TUI owns the terminal, so logs only
// go to a file, and only when one is set.
type LogConfig struct {
	// File is the path logs are appended to. Empty disables logging.
	File string `yaml:"file,omitempty"`

	// Level sets the minimum log level (debug, info, warn, error).
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		HistorySize: 50,
		Accent:      "212",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/safecalc/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "safecalc", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for anything unset.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.HistorySize <= 0 {
		return fmt.Errorf("%w: history_size must be positive, got %d", ErrInvalidConfig, c.HistorySize)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}
