package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg.TabSize != 4 || cfg.WheelLines != 3 || !cfg.Mouse {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
tab_size = 8
wheel_scroll_lines = 5
mouse = false
color_mode = "truecolor"
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.TabSize != 8 {
		t.Errorf("TabSize = %d", cfg.TabSize)
	}
	if cfg.WheelLines != 5 {
		t.Errorf("WheelLines = %d", cfg.WheelLines)
	}
	if cfg.Mouse {
		t.Error("Mouse should be off")
	}
	if cfg.ColorMode != "truecolor" {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	// Unset keys keep defaults
	if cfg.UndoLevels != 1000 {
		t.Errorf("UndoLevels = %d", cfg.UndoLevels)
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
tab_size = -1
wheel_scroll_lines = 0
color_mode = "rainbow"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.TabSize != 4 {
		t.Errorf("TabSize = %d, want sanitized default", cfg.TabSize)
	}
	if cfg.WheelLines != 3 {
		t.Errorf("WheelLines = %d, want sanitized default", cfg.WheelLines)
	}
	if cfg.ColorMode != "auto" {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if cfg.TabSize != 4 {
		t.Errorf("malformed config must fall back to defaults: %+v", cfg)
	}
}
