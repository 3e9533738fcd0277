package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/ecs"
)

// EventSink drains whatever events are left at the end of the tick.
type EventSink struct {
	logger *log.Logger
	counts map[ecs.EventType]int
}

func NewEventSink(logger *log.Logger) *EventSink {
	return &EventSink{logger: loggerOrDefault(logger), counts: make(map[ecs.EventType]int)}
}

func (s *EventSink) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.counts[evt.Type]++
		s.logger.Debug("event", "type", evt.Type, "entity", evt.Entity, "tick", w.Tick())
	}
}

// Count returns how many events of typ have been seen.
func (s *EventSink) Count(typ ecs.EventType) int {
	return s.counts[typ]
}
