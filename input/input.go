// Package input turns raw key state into a movement intent.
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/physics"
)

// Action is a logical control, independent of the physical key.
type Action uint8

const (
	Left Action = iota
	Right
	Up
	Down
	Jump
	Dash
	actionCount
)

var actionNames = [actionCount]string{"left", "right", "up", "down", "jump", "dash"}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("action(%d)", a)
	}
	return actionNames[a]
}

// ParseAction resolves a lowercase action name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown action %q", name)
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// KeyState answers whether an action is held or was pressed this tick.
type KeyState interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
}

// Poll builds this tick's intent. Opposing directions cancel out; jump and
// dash only fire on the tick they are pressed.
func Poll(ks KeyState) physics.Intent {
	if ks == nil {
		return physics.Intent{}
	}
	return physics.Intent{
		Direction: cp.Vector{
			X: axis(ks.Pressed(Right), ks.Pressed(Left)),
			Y: axis(ks.Pressed(Up), ks.Pressed(Down)),
		},
		Jump: ks.JustPressed(Jump),
		Dash: ks.JustPressed(Dash),
	}
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Keymap binds each action to one or more key names.
type Keymap map[Action][]string

// NewKeymap converts a name keyed binding table, as read from config.
func NewKeymap(bindings map[string][]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		keys := bindings[name]
		if len(keys) == 0 {
			return nil, fmt.Errorf("input: action %s has no keys", a)
		}
		km[a] = append([]string(nil), keys...)
	}
	for _, a := range Actions() {
		if _, ok := km[a]; !ok {
			return nil, fmt.Errorf("input: action %s is unbound", a)
		}
	}
	return km, nil
}

// Static is a KeyState with fixed answers, used by the simulator and tests.
type Static struct {
	Held   map[Action]bool
	Tapped map[Action]bool // pressed this tick
}

func (s Static) Pressed(a Action) bool {
	return s.Held[a]
}

func (s Static) JustPressed(a Action) bool {
	return s.Tapped[a]
}
