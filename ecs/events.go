package ecs

// EventType names a gameplay event raised during a frame.
type EventType string

const (
	EventCakeEaten   EventType = "cake_eaten"
	EventCakeExpired EventType = "cake_expired"
	EventCakeSpawned EventType = "cake_spawned"
	EventGameOver    EventType = "game_over"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. It is cleared at the end of every
// scheduler tick, so readers must run later in the same frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the queued events without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
