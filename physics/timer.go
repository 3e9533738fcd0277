package physics

import "time"

// Timer is a one-shot countdown advanced by explicit ticks.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer and reports whether it finished on this tick.
// A finished timer stays finished and further ticks return false.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Finished() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		return true
	}
	return false
}

func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Reset rewinds the timer for reuse.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Fraction returns elapsed/duration in [0, 1].
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}
