package parameter

import "time"

// Shot Power
const (
	DefaultPower = 50
	MinPower     = 0
	MaxPower     = 100
	PowerStep    = 5
)

// Direct Movement
const (
	// MoveSpeed is grounded ball displacement per frame per held direction
	MoveSpeed = 0.2
)

// Terminal Key Hold Emulation
// Terminals report key-down and auto-repeat only, so a held key is inferred
// from the time since its last report
const (
	// InitialHold covers the gap between a first press and the terminal's first auto-repeat
	InitialHold = 300 * time.Millisecond

	// RepeatHold covers the gap between auto-repeat reports
	RepeatHold = 90 * time.Millisecond
)

// Input Queue
const (
	// IntentQueueSize bounds edge-triggered actions buffered between frames
	IntentQueueSize = 64
)
