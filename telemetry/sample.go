// Package telemetry records one row per player per tick and summarizes a run.
package telemetry

import (
	"github.com/milk9111/dashcore/physics"
)

// Sample is one player's state at the end of a tick.
type Sample struct {
	Tick         uint64  `csv:"tick"`
	Entity       int     `csv:"entity"`
	X            float64 `csv:"x"`
	Y            float64 `csv:"y"`
	VX           float64 `csv:"vx"`
	VY           float64 `csv:"vy"`
	AX           float64 `csv:"ax"`
	AY           float64 `csv:"ay"`
	Friction     float64 `csv:"friction"`
	Gravity      float64 `csv:"gravity"`
	Grounded     bool    `csv:"grounded"`
	DashState    string  `csv:"dash_state"`
	Charges      int     `csv:"charges"`
	DashDistance float64 `csv:"dash_distance"`
}

// NewSample snapshots a body and its dash.
func NewSample(tick uint64, entity int, b physics.Body, d physics.Dash) Sample {
	return Sample{
		Tick:         tick,
		Entity:       entity,
		X:            b.Position.X,
		Y:            b.Position.Y,
		VX:           b.Velocity.X,
		VY:           b.Velocity.Y,
		AX:           b.Acceleration.X,
		AY:           b.Acceleration.Y,
		Friction:     b.Friction,
		Gravity:      b.Gravity,
		Grounded:     b.Grounded,
		DashState:    d.State.String(),
		Charges:      d.Charges,
		DashDistance: d.Distance,
	}
}
