package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	assert.NotPanics(t, func() {
		sm.PlayShot()
		sm.PlaySwish()
		sm.PlayClick()
		assert.False(t, sm.Play(SoundRim, 0.5))
		sm.ToggleMute()
		sm.Cleanup()
	})
	assert.False(t, sm.IsInitialized())
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization fails in CI/test environments without audio devices
	// The game runs silently in that case
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	require.NoError(t, sm.Initialize())
	sm.Cleanup()
	assert.False(t, sm.IsInitialized())
}

func TestSoundManagerDisabledByConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	assert.ErrorIs(t, sm.Initialize(), ErrAudioDisabled)
	assert.False(t, sm.IsInitialized())
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	assert.False(t, sm.IsMuted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
	assert.False(t, sm.ToggleMute())

	sm.SetMuted(true)
	assert.True(t, sm.IsMuted())
}

// TestSoundManagerAdmit exercises gating without a device by marking the manager live
func TestSoundManagerAdmit(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.initialized = true

	clock := time.Unix(100, 0)
	sm.now = func() time.Time { return clock }

	assert.True(t, sm.admit(SoundBounce))
	assert.False(t, sm.admit(SoundBounce), "repeat within gap suppressed")
	assert.True(t, sm.admit(SoundRim), "gap is per cue")

	clock = clock.Add(sm.minGap + time.Millisecond)
	assert.True(t, sm.admit(SoundBounce))

	sm.muted = true
	clock = clock.Add(time.Second)
	assert.False(t, sm.admit(SoundShot))

	sm.muted = false
	sm.cfg.EffectVolumes[SoundShot] = 0
	assert.False(t, sm.admit(SoundShot), "zero gain skipped")

	assert.False(t, sm.admit(soundTypeCount))
}

func TestSoundManagerSetConfigKeepsRate(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.initialized = true

	cfg := DefaultAudioConfig()
	cfg.SampleRate = 22050
	cfg.MasterVolume = 0.3
	sm.SetConfig(cfg)

	assert.Equal(t, 44100, sm.cfg.SampleRate)
	assert.Equal(t, 0.3, sm.cfg.MasterVolume)
}
