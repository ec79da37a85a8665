package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hoopshot/parameter"
)

// SoundManager plays generated cues through the speaker
// Safe for concurrent use; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Per-cue last start time, suppresses rapid repeats of micro-bounces
	lastPlayed [soundTypeCount]time.Time
	minGap     time.Duration
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		minGap: parameter.CueMinGap,
		now:    time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetConfig swaps volumes for subsequent cues
// Sample rate changes require a restart
func (sm *SoundManager) SetConfig(cfg *AudioConfig) {
	if cfg == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	rate := sm.cfg.SampleRate
	sm.cfg = cfg
	if sm.initialized {
		sm.cfg.SampleRate = rate
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// SetMuted sets mute explicitly
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether a speaker is attached
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a cue; intensity in [0, 1] scales impact cues
// Returns true if the cue was queued to the mixer
func (sm *SoundManager) Play(st SoundType, intensity float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.admit(st) {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg, intensity)
	if streamer == nil {
		return false
	}

	if sm.initialized {
		speaker.Lock()
		sm.mixer.Add(streamer)
		speaker.Unlock()
	}
	return true
}

// admit applies mute, config gating and repeat suppression; caller holds mu
func (sm *SoundManager) admit(st SoundType) bool {
	if !sm.initialized || sm.muted || !sm.cfg.Enabled {
		return false
	}
	if st < 0 || st >= soundTypeCount {
		return false
	}
	if sm.cfg.Gain(st) <= 0 {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < sm.minGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// PlayShot plays the release cue
func (sm *SoundManager) PlayShot() { sm.Play(SoundShot, 1) }

// PlaySwish plays the made-basket cue
func (sm *SoundManager) PlaySwish() { sm.Play(SoundSwish, 1) }

// PlayClick plays the UI tick
func (sm *SoundManager) PlayClick() { sm.Play(SoundClick, 1) }
