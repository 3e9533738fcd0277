package physics

import "github.com/jakecoffman/cp"

// Body is the kinematic state of one controlled entity.
type Body struct {
	Position     cp.Vector
	Velocity     cp.Vector
	Acceleration cp.Vector
	// Depth is the render layer; physics never reads or writes it.
	Depth    float64
	Friction float64
	Gravity  float64
	Grounded bool
}

// NewBody creates a body at rest at spawn with default gravity.
func NewBody(spawn cp.Vector, t Tuning) Body {
	return Body{
		Position: spawn,
		Gravity:  t.Gravity,
	}
}
