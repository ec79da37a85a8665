package input

import (
	"time"

	"github.com/lixenwraith/hoopshot/parameter"
)

// Tracker holds the level-triggered movement state and the edge-triggered intent queue
// Terminals deliver key-down and auto-repeat only; a direction is released when
// its hold window lapses without a fresh press
type Tracker struct {
	held      [DirectionCount]bool
	pressedAt [DirectionCount]time.Time
	repeating [DirectionCount]bool

	initialHold time.Duration
	repeatHold  time.Duration

	queue []Intent
}

// NewTracker creates a tracker with the given hold windows
// initialHold covers the gap before the terminal starts auto-repeating
func NewTracker(initialHold, repeatHold time.Duration) *Tracker {
	return &Tracker{
		initialHold: initialHold,
		repeatHold:  repeatHold,
		queue:       make([]Intent, 0, parameter.IntentQueueSize),
	}
}

// SetHold updates the hold windows, applied from the next Expire
func (t *Tracker) SetHold(initialHold, repeatHold time.Duration) {
	t.initialHold = initialHold
	t.repeatHold = repeatHold
}

// Press marks a direction held
func (t *Tracker) Press(dir Direction) {
	if dir >= DirectionCount {
		return
	}
	t.held[dir] = true
}

// Release clears a held direction
func (t *Tracker) Release(dir Direction) {
	if dir >= DirectionCount {
		return
	}
	t.held[dir] = false
	t.repeating[dir] = false
}

// ReleaseAll clears every held direction
func (t *Tracker) ReleaseAll() {
	for d := range DirectionCount {
		t.Release(d)
	}
}

// Touch records a key-down or auto-repeat for dir at now
func (t *Tracker) Touch(dir Direction, now time.Time) {
	if dir >= DirectionCount {
		return
	}
	if t.held[dir] {
		t.repeating[dir] = true
	}
	t.held[dir] = true
	t.pressedAt[dir] = now
}

// Expire releases directions whose hold window has lapsed
func (t *Tracker) Expire(now time.Time) {
	for d := range DirectionCount {
		if !t.held[d] {
			continue
		}
		window := t.initialHold
		if t.repeating[d] {
			window = t.repeatHold
		}
		if now.Sub(t.pressedAt[d]) > window {
			t.Release(d)
		}
	}
}

// Held returns a copy of the held-direction array
func (t *Tracker) Held() [DirectionCount]bool {
	return t.held
}

// IsHeld reports whether dir is currently held
func (t *Tracker) IsHeld(dir Direction) bool {
	return dir < DirectionCount && t.held[dir]
}

// Queue appends an edge-triggered intent, returns false if the queue is full
func (t *Tracker) Queue(in Intent) bool {
	if len(t.queue) >= parameter.IntentQueueSize {
		return false
	}
	t.queue = append(t.queue, in)
	return true
}

// Drain returns queued intents in arrival order and empties the queue
func (t *Tracker) Drain() []Intent {
	if len(t.queue) == 0 {
		return nil
	}
	out := make([]Intent, len(t.queue))
	copy(out, t.queue)
	t.queue = t.queue[:0]
	return out
}
