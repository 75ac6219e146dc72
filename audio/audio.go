// Package audio plays the engine's synthesized sound cues through beep.
// No audio assets are involved; every cue is generated.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager mixes the engine sound cues. All methods are safe to call
// before Initialize; they simply do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewSoundManager creates a sound manager with cues enabled at full volume.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
		volume:  1.0,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all cues.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetEnabled toggles all cues.
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// SetVolume sets the cue volume, 0.0 to 1.0.
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	sm.volume = volume
}

// PlayBlip plays the short typewriter blip emitted per revealed glyph.
func (sm *SoundManager) PlayBlip() {
	sm.play(NewTone(1100, 18*time.Millisecond, WaveSquare, sampleRate))
}

// PlayConfirm plays the two-tone cue for advancing a finished line.
func (sm *SoundManager) PlayConfirm() {
	sm.play(beep.Seq(
		NewTone(660, 45*time.Millisecond, WaveSine, sampleRate),
		NewTone(880, 60*time.Millisecond, WaveSine, sampleRate),
	))
}

// play adds a gain-adjusted streamer to the mixer.
func (sm *SoundManager) play(streamer beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled || sm.volume == 0 {
		return
	}

	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(sm.volume),
		Silent:   sm.volume == 0,
	}

	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}
