package config

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/parameter"
)

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	p := &c.Physics
	if p.Gravity <= 0 {
		return errors.Errorf("config: physics.gravity must be > 0, got %g", p.Gravity)
	}
	if p.BallRadius <= 0 {
		return errors.Errorf("config: physics.ball_radius must be > 0, got %g", p.BallRadius)
	}

	unit := []struct {
		name string
		v    float64
	}{
		{"physics.rim_restitution", p.RimRestitution},
		{"physics.backboard_restitution", p.BackboardRestitution},
		{"physics.ground_restitution", p.GroundRestitution},
		{"physics.wall_restitution", p.WallRestitution},
		{"physics.ground_friction", p.GroundFriction},
		{"audio.master_volume", c.Audio.MasterVolume},
	}
	for _, u := range unit {
		if u.v < 0 || u.v > 1 {
			return errors.Errorf("config: %s must be in [0, 1], got %g", u.name, u.v)
		}
	}

	if p.BounceMinSpeed < 0 || p.RestSpeed < 0 || p.ApexClearance < 0 {
		return errors.New("config: physics speeds and clearance must be >= 0")
	}

	ctl := &c.Controls
	if ctl.MoveSpeed <= 0 {
		return errors.Errorf("config: controls.move_speed must be > 0, got %g", ctl.MoveSpeed)
	}
	if ctl.PowerStep < 1 || ctl.PowerStep > parameter.MaxPower {
		return errors.Errorf("config: controls.power_step must be in [1, %d], got %d", parameter.MaxPower, ctl.PowerStep)
	}
	if ctl.InitialHoldMS <= 0 || ctl.RepeatHoldMS <= 0 {
		return errors.New("config: controls hold windows must be > 0")
	}

	d := &c.Display
	if d.FPS < parameter.MinFPS || d.FPS > parameter.MaxFPS {
		return errors.Errorf("config: display.fps must be in [%d, %d], got %d", parameter.MinFPS, parameter.MaxFPS, d.FPS)
	}
	if d.Camera < 1 || d.Camera > 4 {
		return errors.Errorf("config: display.camera must be in [1, 4], got %d", d.Camera)
	}

	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("config: audio.sample_rate must be > 0, got %d", c.Audio.SampleRate)
	}
	for name, vol := range c.Audio.Volumes {
		if _, ok := audio.SoundTypeByName(name); !ok {
			return errors.Errorf("config: audio.volumes: unknown cue %q", name)
		}
		if vol < 0 || vol > 1 {
			return errors.Errorf("config: audio.volumes.%s must be in [0, 1], got %g", name, vol)
		}
	}

	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}
