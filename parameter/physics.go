package parameter

// Ball & Gravity
// All rates are per frame: the integrator takes one fixed step per rendered frame
const (
	// Gravity is the downward acceleration magnitude in units/frame²
	Gravity = 0.035

	// BallRadius is constant for the whole session
	BallRadius = 0.8
)

// Restitution (fraction of velocity retained after contact)
const (
	RestitutionRim       = 0.4
	RestitutionBackboard = 0.2
	RestitutionGround    = 0.4
	RestitutionWall      = 0.5

	// GroundFriction damps horizontal velocity on each floor bounce
	GroundFriction = 0.8
)

// Contact Thresholds
const (
	// BounceMinSpeed is the vertical speed below which a floor contact settles instead of bouncing
	BounceMinSpeed = 0.1

	// RestSpeed is the speed below which a ball near the floor is forced to rest
	RestSpeed = 0.05

	// RestHeightTolerance is how far above floor contact still counts as "near resting"
	RestHeightTolerance = 0.05

	// ScoringCorridorMargin shrinks the rim opening for the fall-through exemption
	// Empirically tuned, not derived from net geometry
	ScoringCorridorMargin = 0.18

	// ScoreTubeFactor scales tube radius off the rim radius for the score test
	ScoreTubeFactor = 0.7

	// RimPushOutMargin places a deflected ball just outside the rim annulus
	RimPushOutMargin = 0.01
)

// Shot Planning
const (
	// ApexClearance is the minimum arc height above the rim
	ApexClearance = 1.5

	// MinFlightTime floors total flight time (frames) to keep the planner finite
	MinFlightTime = 1e-3

	// PowerScaleBase and PowerScaleRange map power [0,100] to factor [0.5,1.5]
	PowerScaleBase  = 0.5
	PowerScaleRange = 1.0
)
