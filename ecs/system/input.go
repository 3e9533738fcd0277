package system

import (
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/input"
)

// InputSystem rewrites every player's intent from the current key state.
type InputSystem struct {
	keys input.KeyState
}

func NewInputSystem(keys input.KeyState) *InputSystem {
	return &InputSystem{keys: keys}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	intent := input.Poll(s.keys)
	forEachPlayer(w, func(_ ecs.Entity, p *component.Player) {
		p.Intent = intent
	})
}
