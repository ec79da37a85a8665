package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine decodes tcell events into tracker updates and queued intents
// It is driven from the frame loop goroutine only
type Machine struct {
	keyTable *KeyTable
	tracker  *Tracker

	// Left-drag anchor for orbit control
	dragging     bool
	dragX, dragY int
}

// NewMachine creates a machine over the default key table
func NewMachine(tracker *Tracker) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		tracker:  tracker,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Tracker returns the tracker fed by this machine
func (m *Machine) Tracker() *Tracker {
	return m.tracker
}

// Process handles one terminal event observed at now
func (m *Machine) Process(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.processKey(ev, now)
	case *tcell.EventMouse:
		m.processMouse(ev)
	case *tcell.EventResize:
		m.tracker.Queue(Intent{Type: IntentResize})
	case *tcell.EventFocus:
		// Auto-repeat stops arriving when focus leaves; drop held movement now
		if !ev.Focused {
			m.tracker.ReleaseAll()
		}
	}
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return
	}

	switch entry.Behavior {
	case BehaviorMove:
		m.tracker.Touch(entry.Direction, now)
	case BehaviorAction, BehaviorSystem:
		m.tracker.Queue(Intent{Type: entry.Intent, Preset: entry.Preset})
	}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		m.tracker.Queue(Intent{Type: IntentZoomIn})
	case buttons&tcell.WheelDown != 0:
		m.tracker.Queue(Intent{Type: IntentZoomOut})
	case buttons&tcell.Button1 != 0:
		if m.dragging && (x != m.dragX || y != m.dragY) {
			m.tracker.Queue(Intent{Type: IntentOrbitDrag, X: x - m.dragX, Y: y - m.dragY})
		}
		m.dragging = true
		m.dragX, m.dragY = x, y
	default:
		m.dragging = false
	}
}
