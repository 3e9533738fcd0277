package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dashcore/input"
)

const stickDeadzone = 0.2

var gamepadButtons = map[input.Action][]ebiten.StandardGamepadButton{
	input.Left:  {ebiten.StandardGamepadButtonLeftLeft},
	input.Right: {ebiten.StandardGamepadButtonLeftRight},
	input.Up:    {ebiten.StandardGamepadButtonLeftTop},
	input.Down:  {ebiten.StandardGamepadButtonLeftBottom},
	input.Jump:  {ebiten.StandardGamepadButtonRightBottom},
	input.Dash:  {ebiten.StandardGamepadButtonRightLeft, ebiten.StandardGamepadButtonFrontBottomRight},
}

// ebitenKeys reads the keyboard through the configured keymap and the first
// connected standard gamepad.
type ebitenKeys struct {
	keys map[input.Action][]ebiten.Key
}

func newEbitenKeys(km input.Keymap) (*ebitenKeys, error) {
	k := &ebitenKeys{keys: make(map[input.Action][]ebiten.Key, len(km))}
	for action, names := range km {
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("keys: action %s: %w", action, err)
			}
			k.keys[action] = append(k.keys[action], key)
		}
	}
	return k, nil
}

func (k *ebitenKeys) Pressed(a input.Action) bool {
	for _, key := range k.keys[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	id, ok := firstGamepad()
	if !ok {
		return false
	}
	for _, b := range gamepadButtons[a] {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return stickPressed(id, a)
}

func (k *ebitenKeys) JustPressed(a input.Action) bool {
	for _, key := range k.keys[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	id, ok := firstGamepad()
	if !ok {
		return false
	}
	for _, b := range gamepadButtons[a] {
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			return true
		}
	}
	return false
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 || !ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		return 0, false
	}
	return ids[0], true
}

func stickPressed(id ebiten.GamepadID, a input.Action) bool {
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch a {
	case input.Left:
		return x < -stickDeadzone
	case input.Right:
		return x > stickDeadzone
	case input.Up:
		// stick y grows downward
		return y < -stickDeadzone && math.Abs(y) > math.Abs(x)/2
	case input.Down:
		return y > stickDeadzone && math.Abs(y) > math.Abs(x)/2
	}
	return false
}
