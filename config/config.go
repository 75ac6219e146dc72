// Package config loads the engine configuration from YAML, overlaying a
// file over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	TextBox TextBoxConfig `yaml:"textBox"`
	Fonts   []FontConfig  `yaml:"fonts"`
	Audio   AudioConfig   `yaml:"audio"`

	// Script is the path of the script played on startup.
	Script string `yaml:"script"`
}

// WindowConfig controls the game window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// TextBoxConfig holds the dialogue box layout constants and font selection.
type TextBoxConfig struct {
	Padding      float64 `yaml:"padding"`
	MarginX      float64 `yaml:"marginX"`
	MarginBottom float64 `yaml:"marginBottom"`
	HeightFrac   float64 `yaml:"heightFrac"`
	FontName     string  `yaml:"fontName"`
	FontSize     float64 `yaml:"fontSize"`
}

// FontConfig registers a font file under a logical name.
type FontConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// AudioConfig controls the built-in sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Fable",
			Resizable: true,
		},
		TextBox: TextBoxConfig{
			Padding:      16,
			MarginX:      24,
			MarginBottom: 24,
			HeightFrac:   0.28,
			FontName:     "dialogue",
			FontSize:     24,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Script: "data/script.yaml",
	}
}

// Load reads the YAML file at path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TextBox.HeightFrac <= 0 || c.TextBox.HeightFrac >= 1 {
		return fmt.Errorf("textBox.heightFrac must be in (0, 1), got %v", c.TextBox.HeightFrac)
	}
	if c.TextBox.FontSize <= 0 {
		return fmt.Errorf("textBox.fontSize must be positive, got %v", c.TextBox.FontSize)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	for i, f := range c.Fonts {
		if f.Name == "" || f.Path == "" {
			return fmt.Errorf("font %d: name and path are required", i)
		}
	}
	return nil
}
