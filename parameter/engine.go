package parameter

// Game Loop Timing
const (
	// DefaultFPS is the frame rate, one physics step per frame
	DefaultFPS = 60
	MinFPS     = 10
	MaxFPS     = 240

	// TerminalEventBuffer sizes the poller-to-loop channel
	TerminalEventBuffer = 256
)
