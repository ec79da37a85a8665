// Package config resolves game settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/input"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/physics"
)

// Config is the full settings tree, mirrored 1:1 by the TOML file
type Config struct {
	Physics  PhysicsConfig     `toml:"physics"`
	Controls ControlsConfig    `toml:"controls"`
	Display  DisplayConfig     `toml:"display"`
	Audio    AudioConfig       `toml:"audio"`
	Keymap   map[string]string `toml:"keymap,omitempty"`
}

// PhysicsConfig overrides simulation tuning
type PhysicsConfig struct {
	Gravity              float64 `toml:"gravity"`
	BallRadius           float64 `toml:"ball_radius"`
	RimRestitution       float64 `toml:"rim_restitution"`
	BackboardRestitution float64 `toml:"backboard_restitution"`
	GroundRestitution    float64 `toml:"ground_restitution"`
	WallRestitution      float64 `toml:"wall_restitution"`
	GroundFriction       float64 `toml:"ground_friction"`
	BounceMinSpeed       float64 `toml:"bounce_min_speed"`
	RestSpeed            float64 `toml:"rest_speed"`
	ApexClearance        float64 `toml:"apex_clearance"`
}

// ControlsConfig overrides input tuning
type ControlsConfig struct {
	MoveSpeed     float64 `toml:"move_speed"`
	PowerStep     int     `toml:"power_step"`
	InitialHoldMS int     `toml:"initial_hold_ms"`
	RepeatHoldMS  int     `toml:"repeat_hold_ms"`
}

// DisplayConfig overrides rendering
type DisplayConfig struct {
	FPS      int  `toml:"fps"`
	Camera   int  `toml:"camera"`
	Orbit    bool `toml:"orbit"`
	ShowHelp bool `toml:"show_help"`
}

// AudioConfig overrides sound
// Volumes maps cue names (shot, rim, backboard, bounce, swish, click) to gains
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	Muted        bool               `toml:"muted"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes,omitempty"`
}

// Default returns the stock configuration
func Default() *Config {
	p := physics.DefaultParams()
	return &Config{
		Physics: PhysicsConfig{
			Gravity:              p.Gravity,
			BallRadius:           p.BallRadius,
			RimRestitution:       p.RestitutionRim,
			BackboardRestitution: p.RestitutionBackboard,
			GroundRestitution:    p.RestitutionGround,
			WallRestitution:      p.RestitutionWall,
			GroundFriction:       p.GroundFriction,
			BounceMinSpeed:       p.BounceMinSpeed,
			RestSpeed:            p.RestSpeed,
			ApexClearance:        p.ApexClearance,
		},
		Controls: ControlsConfig{
			MoveSpeed:     parameter.MoveSpeed,
			PowerStep:     parameter.PowerStep,
			InitialHoldMS: int(parameter.InitialHold / time.Millisecond),
			RepeatHoldMS:  int(parameter.RepeatHold / time.Millisecond),
		},
		Display: DisplayConfig{
			FPS:    parameter.DefaultFPS,
			Camera: 1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.DefaultMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
	}
}

// Load resolves defaults, then path (if non-empty), then the process environment
// A missing file at path is not an error when allowMissing is set
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			if !(allowMissing && errors.Is(err, os.ErrNotExist)) {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFile overlays the TOML file at path onto c
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "config: read %s", path)
	}
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "config: parse %s", path)
	}
	return nil
}

// Decode overlays TOML from r onto c; unknown keys are rejected
func (c *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.Errorf("%v\n%s", strict, strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return errors.New(derr.String())
		}
		return err
	}
	return nil
}

// Encode writes c as TOML
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return errors.Wrap(enc.Encode(c), "config: encode")
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	out := *c
	if c.Keymap != nil {
		out.Keymap = make(map[string]string, len(c.Keymap))
		for k, v := range c.Keymap {
			out.Keymap[k] = v
		}
	}
	if c.Audio.Volumes != nil {
		out.Audio.Volumes = make(map[string]float64, len(c.Audio.Volumes))
		for k, v := range c.Audio.Volumes {
			out.Audio.Volumes[k] = v
		}
	}
	return &out
}

// PhysicsParams converts the physics section into simulation tuning
func (c *Config) PhysicsParams() physics.Params {
	p := physics.DefaultParams()
	p.Gravity = c.Physics.Gravity
	p.BallRadius = c.Physics.BallRadius
	p.RestitutionRim = c.Physics.RimRestitution
	p.RestitutionBackboard = c.Physics.BackboardRestitution
	p.RestitutionGround = c.Physics.GroundRestitution
	p.RestitutionWall = c.Physics.WallRestitution
	p.GroundFriction = c.Physics.GroundFriction
	p.BounceMinSpeed = c.Physics.BounceMinSpeed
	p.RestSpeed = c.Physics.RestSpeed
	p.ApexClearance = c.Physics.ApexClearance
	return p
}

// EngineControls converts the controls section into engine tuning
func (c *Config) EngineControls() engine.Controls {
	return engine.Controls{
		MoveSpeed: c.Controls.MoveSpeed,
		PowerStep: c.Controls.PowerStep,
	}
}

// HoldWindows returns the key-up emulation windows
func (c *Config) HoldWindows() (initial, repeat time.Duration) {
	return time.Duration(c.Controls.InitialHoldMS) * time.Millisecond,
		time.Duration(c.Controls.RepeatHoldMS) * time.Millisecond
}

// FrameInterval returns the tick period for the configured FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// AudioSettings converts the audio section for the sound manager
// Unknown cue names were already rejected by Validate
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, vol := range c.Audio.Volumes {
		ac.SetEffectVolume(name, vol)
	}
	return ac
}

// KeyTable returns the default bindings with the keymap section applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keymap) == 0 {
		return base, nil
	}
	override, err := input.ParseKeyBindings(c.Keymap)
	if err != nil {
		return nil, errors.Wrap(err, "config: keymap")
	}
	return input.MergeKeyTable(base, override), nil
}
