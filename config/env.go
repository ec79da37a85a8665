package config

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Environment variable names
const (
	EnvGravity      = "HOOPSHOT_GRAVITY"
	EnvMoveSpeed    = "HOOPSHOT_MOVE_SPEED"
	EnvPowerStep    = "HOOPSHOT_POWER_STEP"
	EnvFPS          = "HOOPSHOT_FPS"
	EnvAudioEnabled = "HOOPSHOT_AUDIO_ENABLED"
	EnvMasterVolume = "HOOPSHOT_MASTER_VOLUME" // percent 0-100
	EnvSFXVolumes   = "HOOPSHOT_SFX_VOLUMES"   // JSON object of cue name to gain
	EnvSampleRate   = "HOOPSHOT_SAMPLE_RATE"
	EnvConfigPath   = "HOOPSHOT_CONFIG"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays HOOPSHOT_* variables onto c
// Unparseable values are errors, not silently ignored
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvGravity); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvGravity, v, err)
		}
		c.Physics.Gravity = f
	}

	if v, ok := lookup(EnvMoveSpeed); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvMoveSpeed, v, err)
		}
		c.Controls.MoveSpeed = f
	}

	if v, ok := lookup(EnvPowerStep); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvPowerStep, v, err)
		}
		c.Controls.PowerStep = n
	}

	if v, ok := lookup(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvFPS, v, err)
		}
		c.Display.FPS = n
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume is given in percent and clamped like the in-game slider
	if v, ok := lookup(EnvMasterVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvMasterVolume, v, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v, ok := lookup(EnvSFXVolumes); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return envError(EnvSFXVolumes, v, err)
		}
		if c.Audio.Volumes == nil {
			c.Audio.Volumes = make(map[string]float64, len(volumes))
		}
		for name, vol := range volumes {
			c.Audio.Volumes[name] = vol
		}
	}

	if v, ok := lookup(EnvSampleRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvSampleRate, v, err)
		}
		c.Audio.SampleRate = n
	}

	return nil
}

func envError(name, value string, err error) error {
	return errors.Wrapf(err, "config: %s=%q", name, value)
}
