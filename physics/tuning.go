// Package physics integrates player kinematics, runs the dash state machine
// and resolves collisions against a static level grid one axis at a time.
//
// World space is y-up: gravity pulls velocity.y negative and a jump sets it
// positive. Step is the whole per-tick update and is deterministic for a
// given state, intent and dt.
package physics

import "time"

// Tuning holds the movement constants. It is passed by value into
// NewIntegrator and never changes for the integrator's lifetime.
type Tuning struct {
	Gravity   float64 // downward acceleration restored after a dash
	JumpSpeed float64 // vertical velocity set by a grounded jump
	Accel     float64 // horizontal acceleration while steering
	Friction  float64 // horizontal deceleration with no steering input
	MaxVel    float64 // horizontal speed cap outside of a dash
	MinVel    float64 // dead-zone below which horizontal motion snaps to zero

	DashSpeed      float64 // initial speed along the dash direction
	DashAccel      float64 // deceleration opposing the dash
	DashDuration   time.Duration
	MaxDashCharges int
}

// DefaultTuning matches config/defaults.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        900,
		JumpSpeed:      320,
		Accel:          1200,
		Friction:       1000,
		MaxVel:         220,
		MinVel:         12,
		DashSpeed:      600,
		DashAccel:      2000,
		DashDuration:   200 * time.Millisecond,
		MaxDashCharges: 1,
	}
}
