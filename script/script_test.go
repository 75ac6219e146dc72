package script

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write temp script: %v", err)
	}
	return path
}

func TestLoadValidScript(t *testing.T) {
	path := writeScript(t, `
title: A Short Walk
scenes:
  - id: street
    background: assets/bg/street.png
    fadeIn: 8
    fadeOut: 8
    lines:
      - speaker: Mira
        text: "It rained all night."
      - text: "The street is still wet."
  - id: cafe
    background: assets/bg/cafe.png
    lines:
      - speaker: Mira
        text: "Coffee first."
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Title != "A Short Walk" {
		t.Errorf("Title: got %q", s.Title)
	}
	if len(s.Scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(s.Scenes))
	}
	if s.Scenes[0].FadeIn != 8 {
		t.Errorf("Scene fadeIn: got %v, want 8", s.Scenes[0].FadeIn)
	}
	if len(s.Scenes[0].Lines) != 2 {
		t.Fatalf("Expected 2 lines in first scene, got %d", len(s.Scenes[0].Lines))
	}
}

func TestLineDisplay(t *testing.T) {
	withSpeaker := Line{Speaker: "Mira", Text: "Hello."}
	if got := withSpeaker.Display(); got != "Mira: Hello." {
		t.Errorf("Display with speaker: got %q", got)
	}

	narration := Line{Text: "The door creaks open."}
	if got := narration.Display(); got != "The door creaks open." {
		t.Errorf("Display without speaker: got %q", got)
	}
}

func TestValidateRejectsBrokenScripts(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"no scenes", "title: Empty\n"},
		{"scene without id", "scenes:\n  - background: a.png\n"},
		{"duplicate scene ids", "scenes:\n  - id: a\n  - id: a\n"},
		{"negative fade", "scenes:\n  - id: a\n    fadeIn: -1\n"},
		{"empty line text", "scenes:\n  - id: a\n    lines:\n      - speaker: Mira\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.contents)
			if _, err := Load(path); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing script file")
	}
}
