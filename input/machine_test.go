package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine() *Machine {
	return NewMachine(NewTracker(300*time.Millisecond, 90*time.Millisecond))
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMachineMovementKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		dir  Direction
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), DirLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), DirRight},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), DirForward},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), DirBack},
		{"a", runeKey('a'), DirLeft},
		{"d", runeKey('d'), DirRight},
		{"w", runeKey('w'), DirForward},
		{"s", runeKey('s'), DirBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			m.Process(tt.ev, time.Now())
			assert.True(t, m.Tracker().IsHeld(tt.dir))
			assert.Nil(t, m.Tracker().Drain(), "movement must not queue intents")
		})
	}
}

func TestMachineActionKeys(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		intent IntentType
		preset int
	}{
		{"plus", runeKey('+'), IntentPowerUp, 0},
		{"equals", runeKey('='), IntentPowerUp, 0},
		{"minus", runeKey('-'), IntentPowerDown, 0},
		{"underscore", runeKey('_'), IntentPowerDown, 0},
		{"space", runeKey(' '), IntentShoot, 0},
		{"reset", runeKey('r'), IntentReset, 0},
		{"new game", runeKey('n'), IntentNewGame, 0},
		{"orbit", runeKey('o'), IntentToggleOrbit, 0},
		{"preset 3", runeKey('3'), IntentCameraPreset, 3},
		{"mute", runeKey('m'), IntentToggleMute, 0},
		{"help", runeKey('?'), IntentToggleHelp, 0},
		{"quit q", runeKey('q'), IntentQuit, 0},
		{"quit esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, 0},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			m.Process(tt.ev, time.Now())
			got := m.Tracker().Drain()
			require.Len(t, got, 1)
			assert.Equal(t, tt.intent, got[0].Type)
			assert.Equal(t, tt.preset, got[0].Preset)
		})
	}
}

// TestMachineOneIntentPerKeyDown verifies each key-down queues exactly one action
func TestMachineOneIntentPerKeyDown(t *testing.T) {
	m := newTestMachine()
	now := time.Now()

	m.Process(runeKey('+'), now)
	m.Process(runeKey('+'), now)
	m.Process(runeKey('x'), now)

	assert.Len(t, m.Tracker().Drain(), 2)
}

func TestMachineMouseOrbit(t *testing.T) {
	m := newTestMachine()
	now := time.Now()

	m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), now)
	m.Process(tcell.NewEventMouse(13, 4, tcell.Button1, tcell.ModNone), now)
	m.Process(tcell.NewEventMouse(13, 4, tcell.ButtonNone, tcell.ModNone), now)
	m.Process(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), now)
	m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), now)

	got := m.Tracker().Drain()
	require.Len(t, got, 3)
	assert.Equal(t, Intent{Type: IntentOrbitDrag, X: 3, Y: -1}, got[0])
	assert.Equal(t, IntentZoomIn, got[1].Type)
	assert.Equal(t, IntentZoomOut, got[2].Type)
}

func TestMachineFocusLossReleases(t *testing.T) {
	m := newTestMachine()
	m.Process(runeKey('a'), time.Now())
	require.True(t, m.Tracker().IsHeld(DirLeft))

	m.Process(tcell.NewEventFocus(false), time.Now())
	assert.False(t, m.Tracker().IsHeld(DirLeft))
}

func TestIntentIsGameplay(t *testing.T) {
	assert.True(t, IntentShoot.IsGameplay())
	assert.True(t, IntentNewGame.IsGameplay())
	assert.False(t, IntentQuit.IsGameplay())
	assert.False(t, IntentCameraPreset.IsGameplay())
}
