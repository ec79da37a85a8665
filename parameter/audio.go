package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency
	AudioBufferDuration = 100 * time.Millisecond

	DefaultMasterVolume = 0.8
)

// Cue durations
const (
	CueShotDuration      = 120 * time.Millisecond
	CueRimDuration       = 180 * time.Millisecond
	CueBackboardDuration = 90 * time.Millisecond
	CueBounceDuration    = 80 * time.Millisecond
	CueSwishDuration     = 350 * time.Millisecond
	CueClickDuration     = 25 * time.Millisecond

	// CueMinGap suppresses repeats of the same cue (micro-bounces)
	CueMinGap = 60 * time.Millisecond
)

// Cue tones (Hz)
const (
	CueShotFreq      = 330.0
	CueRimFreq       = 1320.0
	CueBackboardFreq = 140.0
	CueBounceFreq    = 90.0
	CueClickFreq     = 1800.0
)

// Impact speed (units per frame) mapped to full cue volume; slower hits scale down
const (
	CueFullSpeed    = 0.6
	CueMinIntensity = 0.2
)
