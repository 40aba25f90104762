// Package config loads editor settings from a TOML file
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Config holds user-tunable editor settings
type Config struct {
	TabSize    int `toml:"tab_size"`
	WheelLines int `toml:"wheel_scroll_lines"`
	UndoLevels int `toml:"undo_levels"`
	UndoBytes  int `toml:"undo_bytes"`

	Mouse     bool   `toml:"mouse"`
	ColorMode string `toml:"color_mode"` // "auto", "256", "truecolor"

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TabSize:    4,
		WheelLines: 3,
		UndoLevels: 1000,
		UndoBytes:  1 << 20,
		Mouse:      true,
		ColorMode:  "auto",
		LogLevel:   "warn",
	}
}

// DefaultPath returns the conventional config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scribe", "config.toml")
}

// Load reads settings from a TOML file over the defaults. A missing
// or unreadable file logs a warning and falls back to defaults, so a
// broken config never blocks startup.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug().Str("file", path).Msg("no config file, using defaults")
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to parse config, using defaults")
		return Default()
	}
	cfg.sanitize()
	return cfg
}

func (c *Config) sanitize() {
	if c.TabSize < 1 || c.TabSize > 16 {
		c.TabSize = 4
	}
	if c.WheelLines < 1 {
		c.WheelLines = 3
	}
	if c.UndoLevels < 1 {
		c.UndoLevels = 1000
	}
	if c.UndoBytes < 1 {
		c.UndoBytes = 1 << 20
	}
	switch c.ColorMode {
	case "auto", "256", "truecolor":
	default:
		c.ColorMode = "auto"
	}
}
