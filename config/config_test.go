package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
  height: 600
  title: "Test Novel"
textBox:
  fontSize: 18
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Test Novel" {
		t.Errorf("Expected overridden title, got %q", cfg.Window.Title)
	}
	if cfg.TextBox.FontSize != 18 {
		t.Errorf("Expected fontSize 18, got %v", cfg.TextBox.FontSize)
	}

	// Untouched fields keep their defaults
	if cfg.TextBox.HeightFrac != 0.28 {
		t.Errorf("Expected default heightFrac, got %v", cfg.TextBox.HeightFrac)
	}
	if cfg.Script != "data/script.yaml" {
		t.Errorf("Expected default script path, got %q", cfg.Script)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"zero window", "window:\n  width: 0\n"},
		{"bad height frac", "textBox:\n  heightFrac: 1.5\n"},
		{"negative font size", "textBox:\n  fontSize: -2\n"},
		{"volume out of range", "audio:\n  volume: 2.0\n"},
		{"font without path", "fonts:\n  - name: dialogue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, err := Load(path); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "window: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default configuration must validate, got %v", err)
	}
}
