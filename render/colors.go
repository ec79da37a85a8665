package render

// Scene palette
var (
	RgbBackground = RGB{14, 16, 26}
	RgbHaze       = RGB{30, 32, 48}

	RgbFloorWood  = RGB{176, 124, 72}
	RgbFloorPaint = RGB{150, 60, 48}
	RgbApron      = RGB{60, 66, 86}
	RgbCourtLine  = RGB{236, 236, 228}

	RgbRim        = RGB{255, 110, 20}
	RgbBackboard  = RGB{210, 225, 240}
	RgbBoardFrame = RGB{250, 250, 250}
	RgbBoardInner = RGB{220, 40, 40}
	RgbNet        = RGB{240, 240, 240}
	RgbPole       = RGB{90, 96, 110}

	RgbBall      = RGB{226, 106, 30}
	RgbBallSeam  = RGB{40, 20, 10}
	RgbBallShine = RGB{255, 220, 180}
	RgbShadow    = RGB{0, 0, 0}

	RgbBleacher      = RGB{52, 70, 120}
	RgbBleacherEdge  = RGB{80, 100, 160}
	RgbScoreboard    = RGB{20, 20, 24}
	RgbScoreboardLED = RGB{60, 255, 90}
)

// HUD palette
var (
	RgbHUDBg      = RGB{24, 26, 38}
	RgbHUDText    = RGB{200, 200, 210}
	RgbHUDDim     = RGB{100, 100, 110}
	RgbHUDHome    = RGB{120, 180, 255}
	RgbHUDGuest   = RGB{255, 150, 120}
	RgbHUDScored  = RGB{255, 220, 80}
	RgbPowerLow   = RGB{60, 220, 90}
	RgbPowerHigh  = RGB{240, 50, 40}
	RgbPowerEmpty = RGB{45, 48, 60}
	RgbHelpBg     = RGB{18, 20, 32}
	RgbHelpBorder = RGB{120, 130, 170}
	RgbHelpKey    = RGB{255, 200, 90}
)
