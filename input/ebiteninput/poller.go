package ebiteninput

import (
	"github.com/automoto/maskfall/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all input mappings
var Bindings map[input.ActionID]Binding

// AnalogDeadzone for analog stick input (0.0 to 1.0)
const AnalogDeadzone = 0.25

func init() {
	Bindings = map[input.ActionID]Binding{
		input.ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyA},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		input.ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		input.ActionMoveUp: {
			Keys: []ebiten.Key{ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		input.ActionMoveDown: {
			Keys: []ebiten.Key{ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		input.ActionAimLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyJ}},
		input.ActionAimRight: {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyL}},
		input.ActionAimUp:    {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyI}},
		input.ActionAimDown:  {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyK}},
		input.ActionAttack: {
			Keys:         []ebiten.Key{ebiten.KeyZ},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			// Right trigger
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontBottomRight,
			},
		},
		input.ActionDodge: {
			Keys:         []ebiten.Key{ebiten.KeySpace},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		input.ActionChangeMask: {
			Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyTab},
			// Left bumper
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopLeft,
			},
		},
		input.ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
	}
}

// Poller reads the keyboard, mouse and every connected standard-layout gamepad.
type Poller struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

// Refresh caches the connected gamepads. Call it once per frame before polling.
func (p *Poller) Refresh() {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
}

func (p *Poller) Pressed(a input.ActionID) bool {
	binding, ok := Bindings[a]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func (p *Poller) MoveStick() (float64, float64) {
	return p.axes(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
}

func (p *Poller) AimStick() (float64, float64) {
	return p.axes(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
}

// axes returns the strongest deflection across all gamepads.
func (p *Poller) axes(h, v ebiten.StandardGamepadAxis) (x, y float64) {
	best := 0.0
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		ax := ebiten.StandardGamepadAxisValue(gpID, h)
		ay := ebiten.StandardGamepadAxisValue(gpID, v)
		if m := ax*ax + ay*ay; m > best {
			best, x, y = m, ax, ay
		}
	}
	return x, y
}

func (p *Poller) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
