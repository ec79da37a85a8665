package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/audio"
	"github.com/lixenwraith/hoopshot/camera"
	"github.com/lixenwraith/hoopshot/config"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/input"
	"github.com/lixenwraith/hoopshot/render"
	"github.com/lixenwraith/hoopshot/render/renderers"
)

// app owns everything the frame loop touches; it is driven from a single goroutine
type app struct {
	cfg          *config.Config
	state        *engine.State
	machine      *input.Machine
	rig          *camera.Rig
	sound        *audio.SoundManager
	orchestrator *render.RenderOrchestrator

	showHelp bool
	quit     bool
}

// newApp wires the simulation, input, camera and renderer around screen
func newApp(cfg *config.Config, screen tcell.Screen, sound *audio.SoundManager) (*app, error) {
	initial, repeat := cfg.HoldWindows()
	kt, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}
	machine := input.NewMachine(input.NewTracker(initial, repeat))
	machine.SetKeyTable(kt)

	rig := camera.NewRig(cfg.Display.Camera)
	rig.SetOrbit(cfg.Display.Orbit)

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator)

	return &app{
		cfg:          cfg,
		state:        engine.NewState(cfg.PhysicsParams(), cfg.EngineControls()),
		machine:      machine,
		rig:          rig,
		sound:        sound,
		orchestrator: orchestrator,
		showHelp:     cfg.Display.ShowHelp,
	}, nil
}

// handleEvent feeds one terminal event to the input machine
func (a *app) handleEvent(ev tcell.Event, now time.Time) {
	a.machine.Process(ev, now)
}

// tick runs one frame: expire holds, route intents, step, sound, draw
func (a *app) tick(now time.Time) {
	tracker := a.machine.Tracker()
	tracker.Expire(now)

	var gameplay []input.Intent
	for _, in := range tracker.Drain() {
		if in.Type.IsGameplay() {
			gameplay = append(gameplay, in)
			continue
		}
		a.handleLocal(in)
	}
	if a.quit {
		return
	}

	events := a.state.Step(engine.FrameInput{Held: tracker.Held(), Intents: gameplay})
	if a.sound != nil {
		playCues(a.sound, events)
	}

	a.rig.Update()
	a.render()
}

// handleLocal applies intents the simulation never sees
func (a *app) handleLocal(in input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		a.quit = true
	case input.IntentToggleMute:
		if a.sound != nil {
			muted := a.sound.ToggleMute()
			log.Printf("AUDIO: muted=%v", muted)
		}
	case input.IntentToggleHelp:
		a.showHelp = !a.showHelp
	case input.IntentResize:
		a.orchestrator.Resize()
	case input.IntentToggleOrbit:
		on := a.rig.ToggleOrbit()
		log.Printf("CAMERA: orbit=%v", on)
	case input.IntentCameraPreset:
		a.rig.SetPreset(in.Preset)
		log.Printf("CAMERA: preset %d (%s)", a.rig.Preset(), camera.PresetName(a.rig.Preset()))
	case input.IntentOrbitDrag:
		a.rig.Drag(in.X, in.Y)
	case input.IntentZoomIn:
		a.rig.Zoom(true)
	case input.IntentZoomOut:
		a.rig.Zoom(false)
	}
}

// render draws the current snapshot; the renderer never sees live state
func (a *app) render() {
	w, h := a.orchestrator.Size()
	ctx := render.NewRenderContext(a.state.Snapshot(), a.rig.Camera(), w, h)
	ctx.Preset = a.rig.Preset()
	ctx.Orbit = a.rig.OrbitEnabled()
	ctx.ShowHelp = a.showHelp
	if a.sound != nil {
		ctx.AudioEnabled = a.sound.IsInitialized()
		ctx.Muted = a.sound.IsMuted()
	}
	a.orchestrator.RenderFrame(ctx)
}

// applyConfig swaps in a reloaded config at a frame boundary
// Returns true when the frame interval changed
func (a *app) applyConfig(cfg *config.Config) (bool, error) {
	kt, err := cfg.KeyTable()
	if err != nil {
		return false, err
	}

	a.state.SetParams(cfg.PhysicsParams())
	a.state.SetControls(cfg.EngineControls())
	a.machine.Tracker().SetHold(cfg.HoldWindows())
	a.machine.SetKeyTable(kt)
	if a.sound != nil {
		a.sound.SetConfig(cfg.AudioSettings())
	}

	fpsChanged := cfg.FrameInterval() != a.cfg.FrameInterval()
	a.cfg = cfg
	return fpsChanged, nil
}
