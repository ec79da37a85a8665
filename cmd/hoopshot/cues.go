package main

import (
	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// cue is one sound to play for a simulation event
type cue struct {
	sound     audio.SoundType
	intensity float64
}

// cueFor maps an event to its sound; ok is false for silent events
func cueFor(ev engine.Event) (c cue, ok bool) {
	impact := vmath.Clamp(ev.Speed/parameter.CueFullSpeed, parameter.CueMinIntensity, 1)

	switch ev.Type {
	case engine.EventShot:
		return cue{audio.SoundShot, impact}, true
	case engine.EventRim:
		return cue{audio.SoundRim, impact}, true
	case engine.EventBackboard:
		return cue{audio.SoundBackboard, impact}, true
	case engine.EventBounce, engine.EventWall:
		return cue{audio.SoundBounce, impact}, true
	case engine.EventScore:
		return cue{audio.SoundSwish, 1}, true
	case engine.EventPower, engine.EventReset, engine.EventNewGame:
		return cue{audio.SoundClick, 1}, true
	}
	return cue{}, false
}

// cuePlayer is the part of the sound manager the loop drives
type cuePlayer interface {
	Play(st audio.SoundType, intensity float64) bool
}

// playCues sounds every audible event of one frame
func playCues(p cuePlayer, events []engine.Event) {
	for _, ev := range events {
		if c, ok := cueFor(ev); ok {
			p.Play(c.sound, c.intensity)
		}
	}
}
