// Package ecs is a small entity store: generation-checked entities, one
// sparse set per component type and an ordered list of systems run once per
// fixed tick.
package ecs

import (
	"time"

	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/level"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	dt   time.Duration
	tick uint64
	grid *level.Grid

	players       *SparseSet[component.Player]
	cameraFollows *SparseSet[component.CameraFollow]
	cameraStates  *SparseSet[component.CameraState]
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity kills the handle and drops its components. It returns false
// for stale or unknown handles.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.players.Remove(e.ID)
	w.cameraFollows.Remove(e.ID)
	w.cameraStates.Remove(e.ID)
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// EntityByID resolves a component-set id back to its live handle.
func (w *World) EntityByID(id int) (Entity, bool) {
	if w == nil || id <= 0 || id > len(w.entities.gen) {
		return Entity{}, false
	}
	e := Entity{ID: id, Gen: w.entities.gen[id-1]}
	return e, w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once with the given tick length, then drops any
// events no system drained.
func (w *World) Update(dt time.Duration) {
	if w == nil {
		return
	}
	w.dt = dt
	w.tick++
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Delta returns the length of the tick being run.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.dt
}

// Tick returns the number of the tick being run, starting at 1.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetGrid attaches the static level geometry.
func (w *World) SetGrid(g *level.Grid) {
	if w == nil {
		return
	}
	w.grid = g
}

// Grid returns the attached level geometry, if any.
func (w *World) Grid() *level.Grid {
	if w == nil {
		return nil
	}
	return w.grid
}
