// Package component holds the plain data attached to entities.
package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/physics"
)

// Player is one controlled body with its dash ability and this tick's input.
type Player struct {
	Body   physics.Body
	Dash   physics.Dash
	Intent physics.Intent
}

// NewPlayer spawns a player at rest with full dash charges.
func NewPlayer(spawn cp.Vector, t physics.Tuning) Player {
	return Player{
		Body: physics.NewBody(spawn, t),
		Dash: physics.NewDash(t),
	}
}
