package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/records"
)

// RecordsSystem offers every resolved dash to the records store.
type RecordsSystem struct {
	store  *records.Store
	logger *log.Logger
	last   float64
}

func NewRecordsSystem(store *records.Store, logger *log.Logger) *RecordsSystem {
	return &RecordsSystem{store: store, logger: loggerOrDefault(logger)}
}

func (s *RecordsSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.store == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventDashResolved) {
		dist, ok := evt.Data.(float64)
		if !ok {
			continue
		}
		s.last = dist
		best, err := s.store.Offer(dist)
		if err != nil {
			s.logger.Warn("could not save records", "error", err)
		}
		if best {
			s.logger.Info("new best dash", "distance", dist)
		}
	}
}

// Last returns the most recent dash distance.
func (s *RecordsSystem) Last() float64 {
	return s.last
}

func (s *RecordsSystem) Best() float64 {
	if s == nil || s.store == nil {
		return 0
	}
	return s.store.Best()
}
