package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/common"
	"github.com/milk9111/dashcore/level"
)

// Grid is the read-only level geometry the resolver probes.
type Grid interface {
	QueryPoint(x, y float64) (*level.Solid, bool)
	HalfBlock() cp.Vector
}

// StepResult reports what happened during one Step.
type StepResult struct {
	DashStarted   bool
	DashCancelled bool
	// DashResolved is set when a Finished dash was closed out this tick;
	// Dash.Distance holds its length.
	DashResolved bool
	HitWall      bool
	HitVertical  bool
	Move         cp.Vector // displacement computed before collision
}

// Integrator runs the fixed-order per-tick update for controlled bodies.
type Integrator struct {
	tuning Tuning
	grid   Grid
}

func NewIntegrator(t Tuning, g Grid) *Integrator {
	return &Integrator{tuning: t, grid: g}
}

func (it *Integrator) Tuning() Tuning {
	return it.tuning
}

func (it *Integrator) Grid() Grid {
	return it.grid
}

// Step advances one body by dt: dash transitions, steering and jump,
// integration, velocity clamp, then X and Y collision in that order.
// A cancelled dash ends the tick right after the transition.
func (it *Integrator) Step(b *Body, d *Dash, in *Intent, dt time.Duration) StepResult {
	res, ok := it.ResolveDash(b, d, in)
	if !ok {
		return res
	}

	if d.State != Dashing {
		it.applyControl(b, d, in)
	}

	move := it.integrate(b, dt)
	res.Move = move
	it.clamp(b, d, in)

	res.HitWall = it.resolveX(b, move.X)
	res.HitVertical = it.resolveY(b, move.Y)
	return res
}

// ResolveDash consumes a dash request and settles the transient dash states.
// It returns false when the rest of the tick must be skipped.
func (it *Integrator) ResolveDash(b *Body, d *Dash, in *Intent) (StepResult, bool) {
	var res StepResult
	if in.Dash {
		d.Request()
		in.Dash = false
	}

	switch d.State {
	case DashStarted:
		d.Start = b.Position
		dir := dashDirection(in.Direction, b.Velocity)
		if d.Charges <= 0 {
			d.State = DashCancelled
			res.DashCancelled = true
			return res, false
		}
		d.Charges--
		d.Timer.Reset()
		b.Velocity = dir.Mult(it.tuning.DashSpeed)
		b.Acceleration = dir.Neg().Mult(it.tuning.DashAccel)
		b.Gravity = 0
		b.Friction = 0
		d.State = Dashing
		res.DashStarted = true
	case DashFinished:
		d.Distance = d.Start.Distance(b.Position)
		b.Gravity = it.tuning.Gravity
		b.Acceleration.Y = 0
		d.State = DashReady
		res.DashResolved = true
	case DashCancelled:
		d.State = DashReady
	}
	return res, true
}

func (it *Integrator) applyControl(b *Body, d *Dash, in *Intent) {
	if b.Grounded {
		d.Charges = it.tuning.MaxDashCharges
		if in.Jump {
			b.Velocity.Y = it.tuning.JumpSpeed
			in.Jump = false
		}
	}

	if in.Direction.X != 0 {
		b.Acceleration.X = common.Sign(in.Direction.X) * it.tuning.Accel
		b.Friction = 0
	} else {
		b.Acceleration.X = 0
		b.Friction = common.Sign(b.Velocity.X) * it.tuning.Friction
	}
}

// integrate applies constant acceleration over the tick and returns the
// displacement.
func (it *Integrator) integrate(b *Body, dt time.Duration) cp.Vector {
	sec := dt.Seconds()
	net := cp.Vector{
		X: b.Acceleration.X - b.Friction,
		Y: b.Acceleration.Y - b.Gravity,
	}
	move := b.Velocity.Mult(sec).Add(net.Mult(0.5 * sec * sec))
	b.Velocity = b.Velocity.Add(net.Mult(sec))
	return move
}

func (it *Integrator) clamp(b *Body, d *Dash, in *Intent) {
	if d.State == Dashing {
		return
	}
	b.Velocity.X = common.Clamp(b.Velocity.X, -it.tuning.MaxVel, it.tuning.MaxVel)
	if in.Direction.X == 0 && math.Abs(b.Velocity.X) <= it.tuning.MinVel {
		b.Velocity.X = 0
		b.Acceleration.X = 0
		b.Friction = 0
	}
}

// resolveX probes the leading edge one half block ahead of the move. A hit
// keeps the position and drops friction for the tick; velocity is untouched.
func (it *Integrator) resolveX(b *Body, moveX float64) bool {
	half := it.grid.HalfBlock()
	probe := b.Position.X + moveX + common.Sign(moveX)*half.X
	if _, hit := it.grid.QueryPoint(probe, b.Position.Y); !hit {
		b.Position.X += moveX
		return false
	}
	b.Friction = 0
	return moveX != 0
}

// resolveY probes below or above. On contact the body settles against the
// face it hit and vertical motion stops. Floor and ceiling contact both
// report grounded.
func (it *Integrator) resolveY(b *Body, moveY float64) bool {
	half := it.grid.HalfBlock()
	probe := b.Position.Y + moveY + common.Sign(moveY)*half.Y
	solid, hit := it.grid.QueryPoint(b.Position.X, probe)
	if !hit {
		b.Position.Y += moveY
		b.Grounded = false
		return false
	}
	if y, ok := it.flushY(b.Position, solid.Bounds(), moveY, half); ok {
		b.Position.Y = y
	}
	b.Grounded = true
	b.Velocity.Y = 0
	return true
}

// flushY returns the center height that rests against the face of the solid
// stack hit while moving by moveY. It climbs out of stacked tiles until the
// center is free and reports false when resting there would move the body
// back against its travel.
func (it *Integrator) flushY(pos cp.Vector, bb cp.BB, moveY float64, half cp.Vector) (float64, bool) {
	if half.Y <= 0 {
		return 0, false
	}
	for {
		var y float64
		switch {
		case moveY < 0:
			y = bb.T + half.Y
			if y > pos.Y {
				return 0, false
			}
		case moveY > 0:
			y = bb.B - half.Y
			if y < pos.Y {
				return 0, false
			}
		default:
			return 0, false
		}
		next, hit := it.grid.QueryPoint(pos.X, y)
		if !hit {
			return y, true
		}
		bb = next.Bounds()
	}
}
