package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Ball release
	SoundRim                        // Rim clang
	SoundBackboard                  // Board thud
	SoundBounce                     // Floor bounce
	SoundSwish                      // Made basket
	SoundClick                      // Power change, reset
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:      "shot",
	SoundRim:       "rim",
	SoundBackboard: "backboard",
	SoundBounce:    "bounce",
	SoundSwish:     "swish",
	SoundClick:     "click",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundTypeByName resolves a config key to a SoundType
func SoundTypeByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by config")
)
