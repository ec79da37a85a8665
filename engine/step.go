package engine

import (
	"log"

	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/input"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/physics"
	"github.com/lixenwraith/hoopshot/vmath"
)

// FrameInput is everything the simulation reads from the player for one frame
type FrameInput struct {
	Held    [input.DirectionCount]bool
	Intents []input.Intent
}

// Step advances the simulation exactly one frame
// Intents apply first in arrival order, then movement or flight
func (s *State) Step(in FrameInput) []Event {
	s.frame++
	var events []Event

	for _, it := range in.Intents {
		events = s.applyIntent(it.Type, events)
	}

	if s.Ball.InAir {
		events = s.stepAirborne(events)
	} else {
		s.stepGrounded(in.Held)
	}

	return events
}

func (s *State) applyIntent(t input.IntentType, events []Event) []Event {
	switch t {
	case input.IntentPowerUp:
		return s.adjustPower(s.Controls.PowerStep, events)
	case input.IntentPowerDown:
		return s.adjustPower(-s.Controls.PowerStep, events)
	case input.IntentShoot:
		return s.shoot(events)
	case input.IntentReset:
		s.resetBall()
		log.Printf("RESET: frame=%d", s.frame)
		return append(events, s.event(EventReset, court.SideNone, 0))
	case input.IntentNewGame:
		s.resetBall()
		s.Score = ScoreBoard{}
		log.Printf("NEW GAME: frame=%d", s.frame)
		return append(events, s.event(EventNewGame, court.SideNone, 0))
	}
	return events
}

func (s *State) adjustPower(delta int, events []Event) []Event {
	power := vmath.ClampInt(s.Shot.Power+delta, parameter.MinPower, parameter.MaxPower)
	if power == s.Shot.Power {
		return events
	}
	s.Shot.Power = power
	return append(events, s.event(EventPower, court.SideNone, float64(power)))
}

// shoot releases the ball toward the nearest hoop; ignored while airborne
func (s *State) shoot(events []Event) []Event {
	if s.Ball.InAir {
		return events
	}

	target := s.Target()
	s.Ball.Vel = physics.PlanShot(s.Ball.Pos, target, s.Shot.Power, &s.Params)
	s.Ball.InAir = true
	s.Shot.LastScored = court.SideNone
	s.Score.TotalShots++

	log.Printf("SHOT: #%d power=%d target=%s from=(%.2f, %.2f, %.2f) vel=(%.3f, %.3f, %.3f)",
		s.Score.TotalShots, s.Shot.Power, target.Side,
		s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Pos.Z,
		s.Ball.Vel.X, s.Ball.Vel.Y, s.Ball.Vel.Z)

	return append(events, s.event(EventShot, target.Side, s.Ball.Speed()))
}

// stepGrounded moves the ball directly by held directions; forward is -Z
func (s *State) stepGrounded(held [input.DirectionCount]bool) {
	var dx, dz float64
	if held[input.DirLeft] {
		dx -= s.Controls.MoveSpeed
	}
	if held[input.DirRight] {
		dx += s.Controls.MoveSpeed
	}
	if held[input.DirForward] {
		dz -= s.Controls.MoveSpeed
	}
	if held[input.DirBack] {
		dz += s.Controls.MoveSpeed
	}
	if dx == 0 && dz == 0 {
		return
	}

	s.Ball.Pos.X += dx
	s.Ball.Pos.Z += dz
	s.Ball.Pos.Y = s.Params.RestingHeight()
	s.Ball.Pos = court.Standard.Clamp(s.Ball.Pos, s.Ball.Radius)
}

// stepAirborne runs integrate, per-hoop collision, floor, walls, then scoring
func (s *State) stepAirborne(events []Event) []Event {
	b := &s.Ball
	prev := b.Pos

	physics.Integrate(b, s.Params.Gravity)

	for i := range s.Hoops {
		h := &s.Hoops[i]

		speed := b.Speed()
		if s.resolver.Rim(b, h) != physics.ContactNone {
			events = append(events, s.event(EventRim, h.Side, speed))
		}

		speed = b.Speed()
		if s.resolver.Backboard(b, prev, h) != physics.ContactNone {
			events = append(events, s.event(EventBackboard, h.Side, speed))
		}
	}

	speed := b.Speed()
	switch s.resolver.Ground(b) {
	case physics.ContactGround:
		events = append(events, s.event(EventBounce, court.SideNone, speed))
	case physics.ContactRest:
		events = append(events, s.event(EventRest, court.SideNone, speed))
	}

	speed = b.Speed()
	if s.resolver.Settle(b) == physics.ContactRest {
		events = append(events, s.event(EventRest, court.SideNone, speed))
	}

	speed = b.Speed()
	if s.resolver.Walls(b) == physics.ContactWall {
		events = append(events, s.event(EventWall, court.SideNone, speed))
	}

	for i := range s.Hoops {
		h := &s.Hoops[i]
		if !physics.DetectScore(b, prev.Y, h, s.Shot.LastScored) {
			continue
		}
		s.credit(h)
		physics.DropThroughRim(b, h, court.Standard)
		events = append(events, s.event(EventScore, h.Side, b.Speed()))
	}

	return events
}

// credit applies a made basket; left hoop is home, right hoop is guest
func (s *State) credit(h *court.Hoop) {
	s.Score.ShotsMade++
	switch h.Side {
	case court.SideLeft:
		s.Score.Home += 2
	case court.SideRight:
		s.Score.Guest += 2
	}
	s.Shot.LastScored = h.Side

	log.Printf("SCORED: %s hoop home=%d guest=%d made=%d/%d",
		h.Side, s.Score.Home, s.Score.Guest, s.Score.ShotsMade, s.Score.TotalShots)
}

func (s *State) event(t EventType, side court.Side, speed float64) Event {
	return Event{
		Type:  t,
		Frame: s.frame,
		Side:  side,
		Speed: speed,
		Pos:   s.Ball.Pos,
	}
}
