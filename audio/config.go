package audio

import (
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// AudioConfig holds playback settings
// Volumes are linear gains in [0, 1]
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundClick] = 0.4
	cfg.EffectVolumes[SoundBounce] = 0.7
	return cfg
}

// SetEffectVolume sets one cue's gain by config name, clamped to [0, 1]
// Returns false for unknown names
func (c *AudioConfig) SetEffectVolume(name string, vol float64) bool {
	st, ok := SoundTypeByName(name)
	if !ok {
		return false
	}
	c.EffectVolumes[st] = vmath.Clamp(vol, 0, 1)
	return true
}

// Gain returns the effective linear gain for a cue
func (c *AudioConfig) Gain(st SoundType) float64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[st] * c.MasterVolume
}
