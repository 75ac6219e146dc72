package settings

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func newTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	store, err := gdata.Open(gdata.Config{
		AppName: "fable_test",
	})
	if err != nil {
		t.Fatalf("Failed to open gdata store: %v", err)
	}
	return store
}

func TestManagerDefaults(t *testing.T) {
	m := NewManager(newTestStore(t))

	s := m.Get()
	if !s.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if s.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", s.SoundVolume)
	}
	if !s.TextBlip {
		t.Error("TextBlip: got false, want true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestManagerSaveAndReload(t *testing.T) {
	store := newTestStore(t)

	m := NewManager(store)
	if err := m.SetSoundVolume(0.25); err != nil {
		t.Fatalf("SetSoundVolume failed: %v", err)
	}
	if err := m.SetTextBlip(false); err != nil {
		t.Fatalf("SetTextBlip failed: %v", err)
	}

	// A fresh manager over the same store sees the persisted values
	reloaded := NewManager(store)
	s := reloaded.Get()
	if s.SoundVolume != 0.25 {
		t.Errorf("SoundVolume after reload: got %v, want 0.25", s.SoundVolume)
	}
	if s.TextBlip {
		t.Error("TextBlip after reload: got true, want false")
	}
	// Untouched fields keep defaults
	if !s.SoundEnabled {
		t.Error("SoundEnabled after reload: got false, want true")
	}
}

func TestManagerVolumeClamping(t *testing.T) {
	m := NewManager(nil)

	m.SetSoundVolume(1.7)
	if m.Get().SoundVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", m.Get().SoundVolume)
	}

	m.SetSoundVolume(-0.3)
	if m.Get().SoundVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", m.Get().SoundVolume)
	}
}

func TestManagerDegradedMode(t *testing.T) {
	m := NewManager(nil)

	if err := m.SetFullscreen(true); err != nil {
		t.Errorf("Save in degraded mode must not error, got %v", err)
	}
	if !m.Get().Fullscreen {
		t.Error("Degraded mode must still update in-memory settings")
	}
}

func TestManagerCorruptData(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveObjectProp("settings", "global", []byte("{not yaml")); err != nil {
		t.Fatalf("Failed to seed corrupt data: %v", err)
	}

	m := &Manager{store: store, settings: DefaultSettings()}
	if err := m.Load(); err == nil {
		t.Error("Expected an error loading corrupt settings")
	}
	if m.Get().SoundVolume != 0.8 {
		t.Error("Corrupt data must fall back to defaults")
	}
}
