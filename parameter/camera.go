package parameter

import "math"

// Default camera, looking at center court slightly above the floor
const (
	CameraEyeX    = 0.0
	CameraEyeY    = 20.0
	CameraEyeZ    = 25.0
	CameraTargetY = 5.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV  = 75.0
	CameraNear = 0.1
)

// Orbit control limits
const (
	OrbitDamping     = 0.05
	OrbitMinDistance = 10.0
	OrbitMaxDistance = 50.0
	OrbitMaxPolar    = math.Pi / 2

	// OrbitDragSpeed is radians per terminal cell of mouse drag
	OrbitDragSpeed = 0.02

	// OrbitZoomStep is the distance factor per wheel notch
	OrbitZoomStep = 1.1
)

// CellAspect is the height/width ratio of a terminal cell
const CellAspect = 2.0
