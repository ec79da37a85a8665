package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/camera"
	"github.com/lixenwraith/hoopshot/config"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/input"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	cfg := config.Default()
	cfg.Audio.Enabled = false

	a, err := newApp(cfg, screen, audio.NewSoundManager(cfg.AudioSettings()))
	require.NoError(t, err)
	return a
}

func press(a *app, now time.Time, key tcell.Key, r rune) {
	a.handleEvent(tcell.NewEventKey(key, r, tcell.ModNone), now)
}

func screenHas(a *app, s string) bool {
	buf := a.orchestrator.Buffer()
	w, h := buf.Bounds()
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if r := buf.Get(x, y).Rune; r > 0 {
				sb.WriteRune(r)
			}
		}
		if strings.Contains(sb.String(), s) {
			return true
		}
	}
	return false
}

func TestApp_ShootOnSpace(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()

	press(a, now, tcell.KeyRune, ' ')
	a.tick(now)

	assert.Equal(t, engine.ModeAirborne, a.state.Mode())
	assert.Equal(t, 1, a.state.Score.TotalShots)
	assert.True(t, screenHas(a, "BALL airborne"))
}

func TestApp_QuitStopsBeforeStep(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()

	press(a, now, tcell.KeyRune, 'q')
	a.tick(now)

	assert.True(t, a.quit)
	assert.Zero(t, a.state.Frame())
}

func TestApp_HeldArrowMoves(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()
	start := a.state.Ball.Pos.X

	press(a, now, tcell.KeyRight, 0)
	a.tick(now)
	a.tick(now.Add(10 * time.Millisecond))
	assert.Greater(t, a.state.Ball.Pos.X, start)

	// No repeat arrives, so the hold expires
	moved := a.state.Ball.Pos.X
	a.tick(now.Add(time.Second))
	a.tick(now.Add(time.Second + 10*time.Millisecond))
	assert.Equal(t, moved, a.state.Ball.Pos.X)
	assert.False(t, a.machine.Tracker().IsHeld(input.DirRight))
}

func TestApp_LocalIntents(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()

	press(a, now, tcell.KeyRune, '?')
	a.tick(now)
	assert.True(t, a.showHelp)
	assert.True(t, screenHas(a, "CONTROLS"))

	press(a, now, tcell.KeyRune, '3')
	a.tick(now)
	assert.Equal(t, camera.PresetRightHoop, a.rig.Preset())
	assert.True(t, screenHas(a, "CAM guest hoop"))

	press(a, now, tcell.KeyRune, 'o')
	a.tick(now)
	require.True(t, a.rig.OrbitEnabled())

	a.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone), now)
	a.handleEvent(tcell.NewEventMouse(14, 10, tcell.Button1, tcell.ModNone), now)
	a.tick(now)
	assert.Zero(t, a.rig.Preset(), "orbit drag leaves the preset")

	// Simulation untouched by camera and overlay intents
	assert.Equal(t, engine.ModeGrounded, a.state.Mode())
	assert.Zero(t, a.state.Score.TotalShots)
}

func TestApp_ApplyConfig(t *testing.T) {
	a := newTestApp(t)

	next := config.Default()
	next.Audio.Enabled = false
	next.Physics.Gravity = 0.05
	next.Display.FPS = 30

	changed, err := a.applyConfig(next)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0.05, a.state.Params.Gravity)
	assert.Same(t, next, a.cfg)

	same := next.Clone()
	changed, err = a.applyConfig(same)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestApp_ApplyConfigRejectsBadKeymap(t *testing.T) {
	a := newTestApp(t)
	before := a.cfg

	bad := config.Default()
	bad.Keymap = map[string]string{"x": "slam_dunk"}
	_, err := a.applyConfig(bad)
	require.Error(t, err)
	assert.Same(t, before, a.cfg)
}
