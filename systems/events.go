package systems

import "github.com/pthm-cable/blobvolley/components"

// EventType identifies discrete match events.
type EventType uint8

const (
	EventJump EventType = iota
	EventBounce
	EventScore
	EventGameOver
)

// Event is a fire-and-forget notification produced during a tick and
// drained once per tick by the owning loop (audio, telemetry).
type Event struct {
	Type EventType
	Side components.Side // scorer, winner or jumper depending on Type
	Pos  components.Vec2 // contact position for bounce/score events
}

func (m *Match) emit(ev Event) {
	m.events = append(m.events, ev)
}

// DrainEvents returns the events emitted since the last drain and clears
// the queue.
func (m *Match) DrainEvents() []Event {
	if len(m.events) == 0 {
		return nil
	}
	evs := m.events
	m.events = nil
	return evs
}
