package engine

import (
	"github.com/lixenwraith/hoopshot/court"
	"github.com/lixenwraith/hoopshot/vmath"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventShot marks a ball release
	// Trigger: IntentShoot while grounded | Side: target hoop, Speed: release speed
	EventShot EventType = iota

	// EventRim marks a rim deflection
	// Trigger: Resolver.Rim | Side: hoop, Speed: impact speed
	EventRim

	// EventBackboard marks a backboard bounce
	// Trigger: Resolver.Backboard | Side: hoop, Speed: impact speed
	EventBackboard

	// EventBounce marks a floor bounce that keeps the ball airborne
	// Trigger: Resolver.Ground | Speed: impact speed
	EventBounce

	// EventWall marks a court-edge reflection
	// Trigger: Resolver.Walls | Speed: impact speed
	EventWall

	// EventScore marks a made basket
	// Trigger: DetectScore | Side: hoop credited
	EventScore

	// EventRest marks the ball settling on the floor
	// Trigger: Resolver.Ground or Resolver.Settle
	EventRest

	// EventReset marks a ball reset to center court
	// Trigger: IntentReset
	EventReset

	// EventNewGame marks a scoreboard clear
	// Trigger: IntentNewGame
	EventNewGame

	// EventPower marks a shot power change
	// Trigger: IntentPowerUp, IntentPowerDown when the value changes
	EventPower
)

var eventNames = [...]string{
	EventShot:      "shot",
	EventRim:       "rim",
	EventBackboard: "backboard",
	EventBounce:    "bounce",
	EventWall:      "wall",
	EventScore:     "score",
	EventRest:      "rest",
	EventReset:     "reset",
	EventNewGame:   "new_game",
	EventPower:     "power",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Event is emitted by Step for audio and logging consumers
type Event struct {
	Type  EventType
	Frame uint64
	Side  court.Side
	Speed float64
	Pos   vmath.Vec3F
}
