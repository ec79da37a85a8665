package physics

import (
	"github.com/lixenwraith/hoopshot/parameter"
)

// Params holds the tunable constants the simulation runs on
// Defaults reproduce the arcade feel; config may override them
type Params struct {
	Gravity    float64
	BallRadius float64

	RestitutionRim       float64
	RestitutionBackboard float64
	RestitutionGround    float64
	RestitutionWall      float64
	GroundFriction       float64

	BounceMinSpeed      float64
	RestSpeed           float64
	RestHeightTolerance float64

	ApexClearance float64
	MinFlightTime float64
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		Gravity:    parameter.Gravity,
		BallRadius: parameter.BallRadius,

		RestitutionRim:       parameter.RestitutionRim,
		RestitutionBackboard: parameter.RestitutionBackboard,
		RestitutionGround:    parameter.RestitutionGround,
		RestitutionWall:      parameter.RestitutionWall,
		GroundFriction:       parameter.GroundFriction,

		BounceMinSpeed:      parameter.BounceMinSpeed,
		RestSpeed:           parameter.RestSpeed,
		RestHeightTolerance: parameter.RestHeightTolerance,

		ApexClearance: parameter.ApexClearance,
		MinFlightTime: parameter.MinFlightTime,
	}
}

// RestingHeight is the ball center height when touching the floor
func (p *Params) RestingHeight() float64 {
	return p.BallRadius
}
