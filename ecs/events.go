package ecs

// EventType names a gameplay event.
type EventType string

const (
	EventDashStarted   EventType = "dash_started"
	EventDashCancelled EventType = "dash_cancelled"
	EventDashFinished  EventType = "dash_finished"
	// EventDashResolved carries the dash length as Data (float64).
	EventDashResolved EventType = "dash_resolved"
	EventLanded       EventType = "landed"
	EventWallContact  EventType = "wall_contact"
)

// Event is a world event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Take removes and returns the events of one type, keeping the rest queued
// in order.
func (q *EventQueue) Take(typ EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
