package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/input"
	"github.com/lixenwraith/hoopshot/physics"
	"github.com/lixenwraith/hoopshot/vmath"
)

func newTestState() *State {
	return NewState(physics.DefaultParams(), DefaultControls())
}

func intents(types ...input.IntentType) FrameInput {
	in := FrameInput{}
	for _, t := range types {
		in.Intents = append(in.Intents, input.Intent{Type: t})
	}
	return in
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestNewState(t *testing.T) {
	s := newTestState()

	assert.Equal(t, vmath.Vec3F{X: 0, Y: 0.8, Z: 0}, s.Ball.Pos)
	assert.Equal(t, vmath.Vec3F{}, s.Ball.Vel)
	assert.Equal(t, 50, s.Shot.Power)
	assert.Equal(t, court.SideNone, s.Shot.LastScored)
	assert.Equal(t, ModeGrounded, s.Mode())
	assert.Equal(t, ScoreBoard{}, s.Score)
}

func TestGroundedMovement(t *testing.T) {
	s := newTestState()

	var held [input.DirectionCount]bool
	held[input.DirRight] = true
	held[input.DirForward] = true
	for i := 0; i < 10; i++ {
		s.Step(FrameInput{Held: held})
	}

	assert.InDelta(t, 2.0, s.Ball.Pos.X, 1e-9)
	assert.InDelta(t, -2.0, s.Ball.Pos.Z, 1e-9)
	assert.Equal(t, 0.8, s.Ball.Pos.Y)
	assert.Equal(t, uint64(10), s.Frame())
}

// TestGroundedMovementClamped verifies the ball stays inside the court edges
func TestGroundedMovementClamped(t *testing.T) {
	s := newTestState()

	var held [input.DirectionCount]bool
	held[input.DirLeft] = true
	held[input.DirBack] = true
	for i := 0; i < 200; i++ {
		s.Step(FrameInput{Held: held})
	}

	assert.InDelta(t, -14.2, s.Ball.Pos.X, 1e-9)
	assert.InDelta(t, 6.7, s.Ball.Pos.Z, 1e-9)
}

func TestPowerAdjust(t *testing.T) {
	s := newTestState()

	ups := make([]input.IntentType, 12)
	for i := range ups {
		ups[i] = input.IntentPowerUp
	}
	events := s.Step(intents(ups...))
	assert.Equal(t, 100, s.Shot.Power)
	assert.Equal(t, 10, countEvents(events, EventPower), "no event once clamped")

	downs := make([]input.IntentType, 25)
	for i := range downs {
		downs[i] = input.IntentPowerDown
	}
	s.Step(intents(downs...))
	assert.Equal(t, 0, s.Shot.Power)
}

func TestShoot(t *testing.T) {
	s := newTestState()

	events := s.Step(intents(input.IntentShoot))

	require.Equal(t, 1, countEvents(events, EventShot))
	assert.Equal(t, court.SideLeft, events[0].Side, "center court ties to the left hoop")
	assert.Equal(t, ModeAirborne, s.Mode())
	assert.Equal(t, 1, s.Score.TotalShots)
	assert.Less(t, s.Ball.Vel.X, 0.0)

	// Shooting again mid-flight is ignored
	events = s.Step(intents(input.IntentShoot))
	assert.Zero(t, countEvents(events, EventShot))
	assert.Equal(t, 1, s.Score.TotalShots)
}

func TestShootTargetsNearestHoop(t *testing.T) {
	s := newTestState()
	s.Ball.Pos.X = 5

	events := s.Step(intents(input.IntentShoot))
	require.NotEmpty(t, events)
	assert.Equal(t, court.SideRight, events[0].Side)
	assert.Greater(t, s.Ball.Vel.X, 0.0)
}

// TestScoreCrossing places the ball just above the left rim so one frame crosses the plane
func TestScoreCrossing(t *testing.T) {
	s := newTestState()
	rim := s.Hoops[0].Rim

	s.Score.TotalShots = 1
	s.Ball.Pos = vmath.Vec3F{X: rim.X + 0.3, Y: 7.0, Z: 0}
	s.Ball.Vel = vmath.Vec3F{Y: -0.265}
	s.Ball.InAir = true

	events := s.Step(FrameInput{})

	require.Equal(t, 1, countEvents(events, EventScore))
	assert.Equal(t, 2, s.Score.Home)
	assert.Equal(t, 0, s.Score.Guest)
	assert.Equal(t, 1, s.Score.ShotsMade)
	assert.Equal(t, court.SideLeft, s.Shot.LastScored)
	assert.Equal(t, rim.X, s.Ball.Pos.X)
	assert.Equal(t, 0.0, s.Ball.Vel.X)
	assert.Equal(t, 0.0, s.Ball.Vel.Z)

	// Same hoop, same shot: a second crossing never scores
	s.Ball.Pos.Y = 7.0
	s.Ball.Vel = vmath.Vec3F{Y: -0.265}
	events = s.Step(FrameInput{})
	assert.Zero(t, countEvents(events, EventScore))
	assert.Equal(t, 2, s.Score.Home)
	assert.Equal(t, 1, s.Score.ShotsMade)
}

func TestScoreRightHoopCreditsGuest(t *testing.T) {
	s := newTestState()
	rim := s.Hoops[1].Rim

	s.Score.TotalShots = 1
	s.Ball.Pos = vmath.Vec3F{X: rim.X, Y: 9, Z: 0.1}
	s.Ball.InAir = true

	for i := 0; i < 100 && s.Score.ShotsMade == 0; i++ {
		s.Step(FrameInput{})
	}

	assert.Equal(t, 2, s.Score.Guest)
	assert.Equal(t, 0, s.Score.Home)
	assert.Equal(t, court.SideRight, s.Shot.LastScored)
}

// TestDropThroughToRest follows a ball dropped into the rim until it settles
func TestDropThroughToRest(t *testing.T) {
	s := newTestState()
	rim := s.Hoops[0].Rim

	s.Score.TotalShots = 1
	s.Ball.Pos = vmath.Vec3F{X: rim.X, Y: 9, Z: 0}
	s.Ball.InAir = true

	scores := 0
	for i := 0; i < 2000 && s.Ball.InAir; i++ {
		scores += countEvents(s.Step(FrameInput{}), EventScore)
	}

	assert.Equal(t, 1, scores)
	assert.False(t, s.Ball.InAir)
	assert.Equal(t, vmath.Vec3F{}, s.Ball.Vel)
	assert.Equal(t, 0.8, s.Ball.Pos.Y)
	assert.InDelta(t, rim.X, s.Ball.Pos.X, 1e-9)
}

func TestGroundRest(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = vmath.Vec3F{X: 3, Y: 0.85, Z: 0}
	s.Ball.Vel = vmath.Vec3F{X: 0.02, Y: -0.04}
	s.Ball.InAir = true

	events := s.Step(FrameInput{})

	assert.Equal(t, 1, countEvents(events, EventRest))
	assert.Equal(t, ModeGrounded, s.Mode())
	assert.Equal(t, vmath.Vec3F{}, s.Ball.Vel)
	assert.Equal(t, 0.8, s.Ball.Pos.Y)
}

// TestShotsMadeNeverExceedAttempts plays a spread of shots to rest
func TestShotsMadeNeverExceedAttempts(t *testing.T) {
	s := newTestState()

	positions := []vmath.Vec3F{
		{X: -8, Y: 0.8, Z: 0},
		{X: -10, Y: 0.8, Z: 3},
		{X: 6, Y: 0.8, Z: -4},
		{X: 12, Y: 0.8, Z: 0},
		{X: 0, Y: 0.8, Z: 6},
	}
	powers := []int{0, 35, 50, 65, 100}

	for _, pos := range positions {
		for _, power := range powers {
			s.Ball.Pos = pos
			s.Shot.Power = power
			s.Step(intents(input.IntentShoot))

			for i := 0; i < 3000 && s.Ball.InAir; i++ {
				s.Step(FrameInput{})
				require.LessOrEqual(t, s.Score.ShotsMade, s.Score.TotalShots)
				require.True(t, court.Standard.Contains(s.Ball.Pos, s.Ball.Radius-vmath.Epsilon))
			}
			require.False(t, s.Ball.InAir, "ball from %+v at power %d never settled", pos, power)
		}
	}

	assert.Equal(t, len(positions)*len(powers), s.Score.TotalShots)
	assert.Equal(t, s.Score.Home+s.Score.Guest, 2*s.Score.ShotsMade)
}

func TestResetKeepsScoreboard(t *testing.T) {
	s := newTestState()
	s.Score = ScoreBoard{Home: 4, Guest: 2, TotalShots: 5, ShotsMade: 3}
	s.Shot = ShotState{Power: 80, LastScored: court.SideLeft}
	s.Ball.Pos = vmath.Vec3F{X: 5, Y: 4, Z: 1}
	s.Ball.Vel = vmath.Vec3F{X: 1}
	s.Ball.InAir = true

	events := s.Step(intents(input.IntentReset))

	assert.Equal(t, 1, countEvents(events, EventReset))
	assert.Equal(t, vmath.Vec3F{Y: 0.8}, s.Ball.Pos)
	assert.Equal(t, vmath.Vec3F{}, s.Ball.Vel)
	assert.Equal(t, ModeGrounded, s.Mode())
	assert.Equal(t, ShotState{Power: 50}, s.Shot)
	assert.Equal(t, ScoreBoard{Home: 4, Guest: 2, TotalShots: 5, ShotsMade: 3}, s.Score)
}

func TestNewGameClearsScoreboard(t *testing.T) {
	s := newTestState()
	s.Score = ScoreBoard{Home: 4, Guest: 2, TotalShots: 5, ShotsMade: 3}

	events := s.Step(intents(input.IntentNewGame))

	assert.Equal(t, 1, countEvents(events, EventNewGame))
	assert.Equal(t, ScoreBoard{}, s.Score)
}

func TestSnapshot(t *testing.T) {
	s := newTestState()
	s.Score = ScoreBoard{Home: 2, TotalShots: 4, ShotsMade: 1}
	s.Ball.Pos.X = 9

	snap := s.Snapshot()
	assert.Equal(t, 25.0, snap.Percentage)
	assert.Equal(t, court.SideRight, snap.Target)
	assert.Equal(t, ModeGrounded, snap.Mode)

	// The copy is detached from live state
	snap.Ball.Pos.X = 0
	assert.Equal(t, 9.0, s.Ball.Pos.X)

	assert.Equal(t, 0.0, ScoreBoard{}.Percentage())
}

func TestSetParamsResizesRestingBall(t *testing.T) {
	s := newTestState()
	p := physics.DefaultParams()
	p.BallRadius = 1.0
	p.Gravity = 0.05

	s.SetParams(p)

	assert.Equal(t, 1.0, s.Ball.Radius)
	assert.Equal(t, 1.0, s.Ball.Pos.Y)
	assert.Equal(t, 0.05, s.resolver.Params.Gravity)
}
