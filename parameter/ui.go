package parameter

// HUD Layout
const (
	// HUDHeight is rows reserved at the bottom for the scoreboard panel
	HUDHeight = 3

	// PowerBarWidth is the cell width of the power gauge
	PowerBarWidth = 20

	// MinViewWidth/Height below which only the HUD is drawn
	MinViewWidth  = 20
	MinViewHeight = 8
)

// HUD Labels
const (
	LabelHome     = "HOME"
	LabelGuest    = "GUEST"
	LabelAttempts = "ATT"
	LabelMade     = "MADE"
	LabelPct      = "PCT"
	LabelPower    = "POWER"
	AudioStr      = "♫ "
)
