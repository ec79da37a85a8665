package parameter

// Court Floor
// The floor is 30 x 15 centered on the origin, X along the length
const (
	CourtHalfLength = 15.0
	CourtHalfWidth  = 7.5

	CenterCircleInner = 1.5
	CenterCircleOuter = 2.0
	ThreePointRadius  = 7.5
)

// Hoop Geometry (left hoop; right hoop mirrors X)
const (
	RimOffsetX = 14.1
	RimHeight  = 6.8
	RimRadius  = 0.9
	RimTube    = 0.1

	BackboardOffsetX   = 15.0
	BackboardHeight    = 8.0
	BackboardHalfWidth = 2.0
	BackboardHalfTall  = 1.5

	NetDepth    = 1.5
	NetSegments = 12
	NetRings    = 4

	PoleOffsetX = 15.3
	PoleHeight  = 8.0
)

// Arena Dressing
const (
	ScoreboardX      = 0.0
	ScoreboardY      = 12.0
	ScoreboardZ      = -12.0
	ScoreboardHalfW  = 4.0
	ScoreboardHalfH  = 2.0
	BleacherRowDepth = 2.0
	BleacherRowRise  = 1.5
)

// Key (painted lane) and free throw circle, measured from each baseline
const (
	KeyLength       = 5.8
	KeyHalfWidth    = 2.45
	FreeThrowRadius = 1.8
	CourtApron      = 3.0
)

// Scene dressing
const (
	BleacherRows   = 5
	BleacherMargin = 1.0
	FogStart       = 25.0
	FogRange       = 60.0
	FogMax         = 0.6
)

// BleacherSeats is the seat count along one bleacher row
const BleacherSeats = 60
