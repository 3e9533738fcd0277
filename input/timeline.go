package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is the key state for one scripted tick.
type Frame struct {
	Held   map[Action]bool
	Tapped map[Action]bool
}

// Timeline replays scripted frames as a KeyState. Past the last frame it
// reports no input.
type Timeline struct {
	frames []Frame
	pos    int
}

// ParseTimeline reads a comma separated list of segments such as
// "right*30,dash,right+jump*2,none*60". A segment joins actions with '+' and
// repeats them for *N ticks (default 1). Directions are held for the whole
// segment; jump and dash are pressed on its first tick only.
func ParseTimeline(src string) (*Timeline, error) {
	tl := &Timeline{}
	src = strings.TrimSpace(src)
	if src == "" {
		return tl, nil
	}
	for i, seg := range strings.Split(src, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, fmt.Errorf("input: timeline segment %d is empty", i+1)
		}

		count := 1
		if body, rep, ok := strings.Cut(seg, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rep))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("input: timeline segment %q: bad repeat %q", seg, rep)
			}
			seg, count = body, n
		}

		held := map[Action]bool{}
		tapped := map[Action]bool{}
		for _, name := range strings.Split(seg, "+") {
			name = strings.TrimSpace(name)
			if strings.EqualFold(name, "none") {
				continue
			}
			a, err := ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("input: timeline segment %q: %w", seg, err)
			}
			held[a] = true
			if a == Jump || a == Dash {
				tapped[a] = true
			}
		}

		for n := 0; n < count; n++ {
			f := Frame{Held: held}
			if n == 0 {
				f.Tapped = tapped
			}
			tl.frames = append(tl.frames, f)
		}
	}
	return tl, nil
}

// Len returns the number of scripted ticks.
func (t *Timeline) Len() int {
	return len(t.frames)
}

// Advance moves to the next tick.
func (t *Timeline) Advance() {
	if t.pos < len(t.frames) {
		t.pos++
	}
}

// Done reports whether every frame has been consumed.
func (t *Timeline) Done() bool {
	return t.pos >= len(t.frames)
}

func (t *Timeline) current() Frame {
	if t.Done() {
		return Frame{}
	}
	return t.frames[t.pos]
}

func (t *Timeline) Pressed(a Action) bool {
	return t.current().Held[a]
}

func (t *Timeline) JustPressed(a Action) bool {
	return t.current().Tapped[a]
}
