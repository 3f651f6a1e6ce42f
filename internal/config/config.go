// Package config holds unitconv configuration: display settings for the
// interactive form, history storage, and logging. Configuration lives in a
// single YAML file (default ~/.config/unitconv/config.yaml) and can be
// hot-reloaded by the Watcher while the TUI is running.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all unitconv configuration.
type Config struct {
	// Display settings for the TUI and one-shot CLI
	Display DisplayConfig `yaml:"display"`

	// Conversion history
	History HistoryConfig `yaml:"history"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls how results are presented.
type DisplayConfig struct {
	// Theme for the TUI: "auto", "light" or "dark"
	Theme string `yaml:"theme"`

	// Precision is the number of decimal places shown for results (0-10).
	Precision int `yaml:"precision"`

	// DefaultCategory is pre-selected when the form opens.
	DefaultCategory string `yaml:"default_category"`
}

// HistoryConfig controls the conversion history store.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`

	// MaxEntries caps the stored rows; oldest entries are pruned past it.
	MaxEntries int `yaml:"max_entries"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`

	// File receives log output during interactive runs so the alt screen
	// stays clean. Empty means stderr (fine for one-shot commands).
	File string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults. Precision 4 matches the
// display contract of the original converter.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Theme:           "auto",
			Precision:       4,
			DefaultCategory: "Length",
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: filepath.Join(defaultDataDir(), "history.db"),
			MaxEntries:   500,
		},
		Logging: LoggingConfig{
			Debug: false,
			File:  filepath.Join(defaultDataDir(), "unitconv.log"),
		},
	}
}

// DefaultPath returns the config file location, honoring the
// UNITCONV_CONFIG environment variable.
func DefaultPath() string {
	if p := os.Getenv("UNITCONV_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(defaultDataDir(), "config.yaml")
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "unitconv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".unitconv"
	}
	return filepath.Join(home, ".unitconv")
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. Environment overrides are applied after parsing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if db := os.Getenv("UNITCONV_DB"); db != "" {
		c.History.DatabasePath = db
	}
	if theme := os.Getenv("UNITCONV_THEME"); theme != "" {
		c.Display.Theme = theme
	}
}

// Validate checks ranges and enumerations; it does not touch the filesystem.
func (c *Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > 10 {
		return fmt.Errorf("display.precision must be between 0 and 10, got %d", c.Display.Precision)
	}
	switch c.Display.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("display.theme must be auto, light or dark, got %q", c.Display.Theme)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}
	return nil
}
