// Package script loads visual-novel scripts from YAML files.
// A script is a sequence of scenes; a scene is a background with a list
// of dialogue lines.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a complete playable story.
type Script struct {
	Title  string  `yaml:"title"`
	Scenes []Scene `yaml:"scenes"`
}

// Scene groups dialogue lines in front of one background image.
type Scene struct {
	ID         string `yaml:"id"`
	Background string `yaml:"background"`

	// FadeIn / FadeOut are per-frame alpha fade speeds for the background
	// when entering and leaving the scene. 0 disables the fade.
	FadeIn  float64 `yaml:"fadeIn"`
	FadeOut float64 `yaml:"fadeOut"`

	Lines []Line `yaml:"lines"`
}

// Line is one piece of dialogue.
type Line struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// Display returns the line as shown in the text box, with the speaker
// name prefixed when present.
func (l Line) Display() string {
	if l.Speaker == "" {
		return l.Text
	}
	return l.Speaker + ": " + l.Text
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that the script is playable.
func (s *Script) Validate() error {
	if len(s.Scenes) == 0 {
		return fmt.Errorf("script has no scenes")
	}

	seen := make(map[string]bool)
	for i, scene := range s.Scenes {
		if scene.ID == "" {
			return fmt.Errorf("scene %d has no id", i)
		}
		if seen[scene.ID] {
			return fmt.Errorf("duplicate scene id %q", scene.ID)
		}
		seen[scene.ID] = true

		if scene.FadeIn < 0 || scene.FadeOut < 0 {
			return fmt.Errorf("scene %q: fade speeds must not be negative", scene.ID)
		}
		for j, line := range scene.Lines {
			if line.Text == "" {
				return fmt.Errorf("scene %q line %d has empty text", scene.ID, j)
			}
		}
	}
	return nil
}
