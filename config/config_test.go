package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/input"
	"github.com/lixenwraith/hoopshot/physics"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultMatchesSimulation(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, physics.DefaultParams(), cfg.PhysicsParams())

	initial, repeat := cfg.HoldWindows()
	assert.Equal(t, 300*time.Millisecond, initial)
	assert.Equal(t, 90*time.Millisecond, repeat)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, 5, cfg.EngineControls().PowerStep)
}

func TestDecodeOverlay(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader(`
[physics]
gravity = 0.05

[controls]
power_step = 10

[audio]
muted = true
[audio.volumes]
rim = 0.25

[keymap]
j = "move_left"
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.05, cfg.Physics.Gravity)
	assert.Equal(t, 0.8, cfg.Physics.BallRadius, "untouched keys keep defaults")
	assert.Equal(t, 10, cfg.Controls.PowerStep)
	assert.True(t, cfg.Audio.Muted)

	ac := cfg.AudioSettings()
	assert.Equal(t, 0.25, ac.EffectVolumes[audio.SoundRim])

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.DirLeft, kt.Runes['j'].Direction)
	assert.Equal(t, input.IntentShoot, kt.Runes[' '].Intent)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader("[physics]\ngravityy = 1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestDecodeRejectsBadSyntax(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Decode(strings.NewReader("[physics\ngravity = ")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }, "gravity"},
		{"negative radius", func(c *Config) { c.Physics.BallRadius = -1 }, "ball_radius"},
		{"rim restitution above one", func(c *Config) { c.Physics.RimRestitution = 1.2 }, "rim_restitution"},
		{"negative wall restitution", func(c *Config) { c.Physics.WallRestitution = -0.1 }, "wall_restitution"},
		{"power step zero", func(c *Config) { c.Controls.PowerStep = 0 }, "power_step"},
		{"power step too large", func(c *Config) { c.Controls.PowerStep = 101 }, "power_step"},
		{"fps too low", func(c *Config) { c.Display.FPS = 5 }, "fps"},
		{"fps too high", func(c *Config) { c.Display.FPS = 500 }, "fps"},
		{"camera preset", func(c *Config) { c.Display.Camera = 7 }, "camera"},
		{"unknown cue", func(c *Config) { c.Audio.Volumes = map[string]float64{"buzzer": 1} }, "buzzer"},
		{"bad keymap", func(c *Config) { c.Keymap = map[string]string{"x": "slam_dunk"} }, "keymap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvGravity:      "0.04",
		EnvFPS:          "30",
		EnvAudioEnabled: "false",
		EnvMasterVolume: "150",
		EnvSFXVolumes:   `{"swish": 0.5}`,
		EnvPowerStep:    "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, 0.04, cfg.Physics.Gravity)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume, "percent is clamped")
	assert.Equal(t, 0.5, cfg.Audio.Volumes["swish"])
	assert.Equal(t, 2, cfg.Controls.PowerStep)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvFPS: "fast"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvFPS)
}

// TestLoadPrecedence verifies file values are overridden by the environment
func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoopshot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfps = 45\n[physics]\ngravity = 0.02\n"), 0o644))

	t.Setenv(EnvFPS, "90")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Display.FPS)
	assert.Equal(t, 0.02, cfg.Physics.Gravity)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default().Physics, cfg.Physics)

	_, err = Load(missing, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 0.042
	cfg.Keymap = map[string]string{"space": "none"}

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	back := Default()
	require.NoError(t, back.Decode(&buf))
	assert.Equal(t, cfg, back)
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	cfg.Keymap = map[string]string{"j": "move_left"}
	cp := cfg.Clone()
	cp.Keymap["j"] = "shoot"
	assert.Equal(t, "move_left", cfg.Keymap["j"])
}

func TestKeyTableOverride(t *testing.T) {
	cfg := Default()
	cfg.Keymap = map[string]string{"Enter": "shoot", "space": "none"}

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.IntentShoot, kt.SpecialKeys[tcell.KeyEnter].Intent)
	_, bound := kt.Runes[' ']
	assert.False(t, bound)
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoopshot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfps = 30\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	// Invalid edit is skipped, valid edit delivered
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfps = 1\n"), 0o644))
	time.Sleep(3 * reloadDebounce)
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfps = 120\n"), 0o644))

	select {
	case cfg := <-ch:
		require.NotNil(t, cfg)
		assert.Equal(t, 120, cfg.Display.FPS)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	for range ch {
	}
}

func TestLoadWithoutEnvLookup(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(noEnv))
	assert.Equal(t, Default(), cfg)
}
