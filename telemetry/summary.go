package telemetry

import (
	"math"

	"github.com/milk9111/dashcore/physics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a run.
type Summary struct {
	Samples       int
	MeanSpeed     float64 // mean |vx|
	SpeedStdDev   float64
	PeakSpeed     float64 // max |vx|
	Dashes        int     // entries into the dashing state
	LongestDash   float64
	GroundedRatio float64
}

// Summarize computes run statistics. An empty input yields a zero Summary.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	speeds := make([]float64, len(samples))
	dists := make([]float64, len(samples))
	grounded := make([]float64, len(samples))
	dashes := 0
	prev := make(map[int]string)
	dashing := physics.Dashing.String()
	for i, s := range samples {
		speeds[i] = math.Abs(s.VX)
		dists[i] = s.DashDistance
		if s.Grounded {
			grounded[i] = 1
		}
		if s.DashState == dashing && prev[s.Entity] != dashing {
			dashes++
		}
		prev[s.Entity] = s.DashState
	}

	mean, std := stat.MeanStdDev(speeds, nil)
	if len(speeds) < 2 {
		std = 0
	}
	return Summary{
		Samples:       len(samples),
		MeanSpeed:     mean,
		SpeedStdDev:   std,
		PeakSpeed:     floats.Max(speeds),
		Dashes:        dashes,
		LongestDash:   floats.Max(dists),
		GroundedRatio: stat.Mean(grounded, nil),
	}
}
