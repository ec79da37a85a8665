package input

// Direction indexes the held-movement array
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirForward
	DirBack

	DirectionCount
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirForward:
		return "forward"
	case DirBack:
		return "back"
	}
	return "none"
}

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentToggleHelp // ?
	IntentResize     // Terminal resize event

	// Gameplay, consumed by the simulation on the next frame
	IntentPowerUp   // +, =
	IntentPowerDown // -, _
	IntentShoot     // Space
	IntentReset     // r
	IntentNewGame   // n

	// Camera
	IntentToggleOrbit  // o
	IntentCameraPreset // 1-4, Preset carries the index
	IntentOrbitDrag    // Left-drag, X/Y carry the cell delta
	IntentZoomIn       // Wheel up
	IntentZoomOut      // Wheel down
)

// Intent is a decoded action ready for the frame loop
type Intent struct {
	Type   IntentType
	Preset int
	X, Y   int
}

// IsGameplay reports whether the simulation consumes this intent
func (t IntentType) IsGameplay() bool {
	switch t {
	case IntentPowerUp, IntentPowerDown, IntentShoot, IntentReset, IntentNewGame:
		return true
	}
	return false
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentToggleHelp:
		return "toggle_help"
	case IntentResize:
		return "resize"
	case IntentPowerUp:
		return "power_up"
	case IntentPowerDown:
		return "power_down"
	case IntentShoot:
		return "shoot"
	case IntentReset:
		return "reset"
	case IntentNewGame:
		return "new_game"
	case IntentToggleOrbit:
		return "toggle_orbit"
	case IntentCameraPreset:
		return "camera_preset"
	case IntentOrbitDrag:
		return "orbit_drag"
	case IntentZoomIn:
		return "zoom_in"
	case IntentZoomOut:
		return "zoom_out"
	}
	return "none"
}
