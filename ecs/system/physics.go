package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/physics"
)

// PhysicsSystem steps every player through the integrator and turns the
// step results into world events.
type PhysicsSystem struct {
	integrator *physics.Integrator
	logger     *log.Logger
}

func NewPhysicsSystem(it *physics.Integrator, logger *log.Logger) *PhysicsSystem {
	return &PhysicsSystem{integrator: it, logger: loggerOrDefault(logger)}
}

// SetIntegrator swaps in a rebuilt integrator, e.g. after a config reload.
func (s *PhysicsSystem) SetIntegrator(it *physics.Integrator) {
	s.integrator = it
}

func (s *PhysicsSystem) Integrator() *physics.Integrator {
	return s.integrator
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.integrator == nil {
		return
	}
	dt := w.Delta()
	events := w.Events()

	forEachPlayer(w, func(e ecs.Entity, p *component.Player) {
		wasGrounded := p.Body.Grounded
		res := s.integrator.Step(&p.Body, &p.Dash, &p.Intent, dt)

		switch {
		case res.DashStarted:
			s.logger.Debug("dash started", "entity", e, "charges", p.Dash.Charges, "velocity", p.Body.Velocity)
			events.Push(ecs.Event{Type: ecs.EventDashStarted, Entity: e, Data: p.Body.Velocity})
		case res.DashCancelled:
			s.logger.Debug("dash cancelled", "entity", e, "reason", "no charges")
			events.Push(ecs.Event{Type: ecs.EventDashCancelled, Entity: e})
		}
		if res.DashResolved {
			s.logger.Debug("dash resolved", "entity", e, "distance", p.Dash.Distance)
			events.Push(ecs.Event{Type: ecs.EventDashResolved, Entity: e, Data: p.Dash.Distance})
		}
		if res.HitWall {
			events.Push(ecs.Event{Type: ecs.EventWallContact, Entity: e, Data: res.Move.X})
		}
		if !wasGrounded && p.Body.Grounded && res.Move.Y <= 0 {
			events.Push(ecs.Event{Type: ecs.EventLanded, Entity: e})
		}
	})
}
