package physics

import (
	"time"

	"github.com/jakecoffman/cp"
)

// DashState is the phase of the dash ability.
//
//	Ready -> Started -> Dashing -> Finished -> Ready
//	         Started -> Cancelled -> Ready
type DashState uint8

const (
	DashReady DashState = iota
	DashStarted
	Dashing
	DashFinished
	DashCancelled
)

func (s DashState) String() string {
	switch s {
	case DashReady:
		return "ready"
	case DashStarted:
		return "started"
	case Dashing:
		return "dashing"
	case DashFinished:
		return "finished"
	case DashCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Dash tracks charges and the timed dash phase for one body.
type Dash struct {
	Charges  int
	Timer    Timer
	State    DashState
	Distance float64 // length of the last completed dash
	Start    cp.Vector
}

func NewDash(t Tuning) Dash {
	return Dash{
		Charges: t.MaxDashCharges,
		Timer:   NewTimer(t.DashDuration),
		State:   DashReady,
	}
}

// Request moves a ready dash to Started. Requests in any other state are
// ignored.
func (d *Dash) Request() bool {
	if d.State != DashReady {
		return false
	}
	d.State = DashStarted
	return true
}

// TickTimer advances the dash timer while Dashing. When the timer completes
// the state becomes Finished, the timer is rewound and TickTimer returns true.
// Run it once per frame, after the integrator.
func (d *Dash) TickTimer(dt time.Duration) bool {
	if d.State != Dashing {
		return false
	}
	if !d.Timer.Tick(dt) {
		return false
	}
	d.State = DashFinished
	d.Timer.Reset()
	return true
}

// dashDirection picks the unit heading for a new dash: held input first,
// then the current velocity, then facing right.
func dashDirection(input, velocity cp.Vector) cp.Vector {
	if input.LengthSq() > 0 {
		return input.Normalize()
	}
	if velocity.LengthSq() > 0 {
		return velocity.Normalize()
	}
	return cp.Vector{X: 1, Y: 0}
}
