package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorMove               // level-triggered, held while auto-repeat keeps arriving
	BehaviorAction             // edge-triggered, one intent per key-down
	BehaviorSystem             // edge-triggered, handled by the frame loop itself
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior  KeyBehavior
	Direction Direction
	Intent    IntentType
	Preset    int
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, 0, IntentQuit, 0},
			tcell.KeyEscape: {BehaviorSystem, 0, IntentQuit, 0},
			tcell.KeyLeft:   {BehaviorMove, DirLeft, IntentNone, 0},
			tcell.KeyRight:  {BehaviorMove, DirRight, IntentNone, 0},
			tcell.KeyUp:     {BehaviorMove, DirForward, IntentNone, 0},
			tcell.KeyDown:   {BehaviorMove, DirBack, IntentNone, 0},
		},

		Runes: map[rune]KeyEntry{
			// Movement
			'a': {BehaviorMove, DirLeft, IntentNone, 0},
			'd': {BehaviorMove, DirRight, IntentNone, 0},
			'w': {BehaviorMove, DirForward, IntentNone, 0},
			's': {BehaviorMove, DirBack, IntentNone, 0},

			// Shot
			'+': {BehaviorAction, 0, IntentPowerUp, 0},
			'=': {BehaviorAction, 0, IntentPowerUp, 0},
			'-': {BehaviorAction, 0, IntentPowerDown, 0},
			'_': {BehaviorAction, 0, IntentPowerDown, 0},
			' ': {BehaviorAction, 0, IntentShoot, 0},
			'r': {BehaviorAction, 0, IntentReset, 0},
			'n': {BehaviorAction, 0, IntentNewGame, 0},

			// Camera
			'o': {BehaviorAction, 0, IntentToggleOrbit, 0},
			'1': {BehaviorAction, 0, IntentCameraPreset, 1},
			'2': {BehaviorAction, 0, IntentCameraPreset, 2},
			'3': {BehaviorAction, 0, IntentCameraPreset, 3},
			'4': {BehaviorAction, 0, IntentCameraPreset, 4},

			// System
			'm': {BehaviorSystem, 0, IntentToggleMute, 0},
			'?': {BehaviorSystem, 0, IntentToggleHelp, 0},
			'q': {BehaviorSystem, 0, IntentQuit, 0},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}

// Clone returns a deep copy of the key table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
