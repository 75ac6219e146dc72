// Package settings persists player-facing preferences across runs using
// a cross-platform gdata store. Settings are global, not per-story.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player preferences the engine honors.
type Settings struct {
	// SoundEnabled toggles all sound cues.
	SoundEnabled bool `yaml:"soundEnabled"`

	// SoundVolume is the cue volume, 0.0 to 1.0.
	SoundVolume float64 `yaml:"soundVolume"`

	// TextBlip toggles the per-glyph typewriter blip.
	TextBlip bool `yaml:"textBlip"`

	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings returns the defaults used before anything is saved.
func DefaultSettings() *Settings {
	return &Settings{
		SoundEnabled: true,
		SoundVolume:  0.8,
		TextBlip:     true,
		Fullscreen:   false,
	}
}

// Storage keys within the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves settings through a gdata.Manager. A nil manager
// puts it in degraded mode: settings live in memory only and Save is a
// silent no-op.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager and loads any saved settings.
// A load failure is not fatal; the defaults are used instead.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[settings] failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load reads settings from the store. Missing data leaves the defaults.
func (m *Manager) Load() error {
	if m.store == nil {
		m.settings = DefaultSettings()
		return nil
	}

	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	m.settings = loaded
	return nil
}

// Save writes the current settings to the store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() *Settings {
	return m.settings
}

// SetSoundEnabled updates the sound toggle and persists it.
func (m *Manager) SetSoundEnabled(enabled bool) error {
	m.settings.SoundEnabled = enabled
	return m.Save()
}

// SetSoundVolume updates the cue volume and persists it.
// Values outside [0, 1] are clamped.
func (m *Manager) SetSoundVolume(volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	m.settings.SoundVolume = volume
	return m.Save()
}

// SetTextBlip updates the typewriter blip toggle and persists it.
func (m *Manager) SetTextBlip(enabled bool) error {
	m.settings.TextBlip = enabled
	return m.Save()
}

// SetFullscreen updates the fullscreen preference and persists it.
func (m *Manager) SetFullscreen(fullscreen bool) error {
	m.settings.Fullscreen = fullscreen
	return m.Save()
}
