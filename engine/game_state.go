package engine

import (
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/physics"
	"github.com/lixenwraith/hoopshot/parameter"
)

// Mode is the ball movement mode
type Mode uint8

const (
	ModeGrounded Mode = iota // moved directly by held directions
	ModeAirborne             // driven by the integrator and resolver
)

func (m Mode) String() string {
	if m == ModeAirborne {
		return "airborne"
	}
	return "grounded"
}

// ShotState tracks the current shot
// LastScored latches the hoop credited since the last release
type ShotState struct {
	Power      int
	LastScored court.Side
}

// ScoreBoard holds session totals
type ScoreBoard struct {
	Home       int
	Guest      int
	TotalShots int
	ShotsMade  int
}

// Percentage returns shots made over attempts in percent, 0 with no attempts
func (s ScoreBoard) Percentage() float64 {
	if s.TotalShots == 0 {
		return 0
	}
	return float64(s.ShotsMade) * 100 / float64(s.TotalShots)
}

// Controls holds the input-facing tuning
type Controls struct {
	MoveSpeed float64
	PowerStep int
}

// DefaultControls returns the stock control tuning
func DefaultControls() Controls {
	return Controls{
		MoveSpeed: parameter.MoveSpeed,
		PowerStep: parameter.PowerStep,
	}
}

// State owns the ball, shot and scoreboard
// All mutation happens in Step on the frame loop goroutine
type State struct {
	Ball  physics.Ball
	Shot  ShotState
	Score ScoreBoard

	Params   physics.Params
	Controls Controls
	Hoops    [2]court.Hoop

	resolver *physics.Resolver
	frame    uint64
}

// NewState creates a session with the ball resting at center court
func NewState(p physics.Params, c Controls) *State {
	s := &State{
		Params:   p,
		Controls: c,
		Hoops:    court.StandardHoops,
	}
	s.resolver = physics.NewResolver(&s.Params, court.Standard)
	s.resetBall()
	return s
}

// SetParams swaps physics tuning, applied from the next frame
// A ball in flight keeps its velocity
func (s *State) SetParams(p physics.Params) {
	s.Params = p
	s.Ball.Radius = p.BallRadius
	if !s.Ball.InAir {
		s.Ball.Pos.Y = p.RestingHeight()
		s.Ball.Pos = court.Standard.Clamp(s.Ball.Pos, s.Ball.Radius)
	}
}

// SetControls swaps control tuning, applied from the next frame
func (s *State) SetControls(c Controls) {
	s.Controls = c
}

// Mode derives the movement mode from the ball
func (s *State) Mode() Mode {
	if s.Ball.InAir {
		return ModeAirborne
	}
	return ModeGrounded
}

// Frame returns the number of frames stepped
func (s *State) Frame() uint64 {
	return s.frame
}

// Target returns the hoop a shot released now would aim for
func (s *State) Target() *court.Hoop {
	return court.Nearest(s.Hoops[:], s.Ball.Pos)
}

func (s *State) resetBall() {
	s.Ball = physics.NewBall(s.Params.BallRadius)
	s.Shot = ShotState{Power: parameter.DefaultPower}
}
