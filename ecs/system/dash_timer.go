package system

import (
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
)

// DashTimerSystem advances dash timers. It must run after PhysicsSystem so a
// dash started this tick gets its first timer tick in the same frame.
type DashTimerSystem struct{}

func NewDashTimerSystem() *DashTimerSystem {
	return &DashTimerSystem{}
}

func (s *DashTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	forEachPlayer(w, func(e ecs.Entity, p *component.Player) {
		if p.Dash.TickTimer(dt) {
			w.Events().Push(ecs.Event{Type: ecs.EventDashFinished, Entity: e})
		}
	})
}
