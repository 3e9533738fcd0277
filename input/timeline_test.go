package input

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/physics"
)

func TestParseTimeline(t *testing.T) {
	tl, err := ParseTimeline("right*3, dash ,right+jump*2,none*2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tl.Len() != 8 {
		t.Fatalf("expected 8 frames, got %d", tl.Len())
	}

	want := []physics.Intent{
		{Direction: cp.Vector{X: 1}},
		{Direction: cp.Vector{X: 1}},
		{Direction: cp.Vector{X: 1}},
		{Dash: true},
		{Direction: cp.Vector{X: 1}, Jump: true},
		{Direction: cp.Vector{X: 1}},
		{},
		{},
	}
	for i, w := range want {
		if got := Poll(tl); got != w {
			t.Fatalf("frame %d: expected %+v, got %+v", i, w, got)
		}
		tl.Advance()
	}
	if !tl.Done() {
		t.Fatalf("expected timeline done")
	}
	tl.Advance()
	if got := Poll(tl); got != (physics.Intent{}) {
		t.Fatalf("expected no input past the end, got %+v", got)
	}
}

func TestParseTimelineErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty_segment", "right,,left"},
		{"bad_repeat", "right*x"},
		{"zero_repeat", "right*0"},
		{"unknown_action", "fly*2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseTimeline(c.src); err == nil {
				t.Fatalf("expected error for %q", c.src)
			}
		})
	}

	tl, err := ParseTimeline("  ")
	if err != nil || tl.Len() != 0 {
		t.Fatalf("expected empty timeline, got %v %v", tl, err)
	}
}
