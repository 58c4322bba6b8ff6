package input

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAimLeft
	ActionAimRight
	ActionAimUp
	ActionAimDown
	ActionAttack
	ActionDodge
	ActionChangeMask
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// Poller is the raw device state for one frame. Stick axes use screen orientation, so
// negative y is up.
type Poller interface {
	Pressed(a ActionID) bool
	MoveStick() (x, y float64)
	AimStick() (x, y float64)
	// Cursor is the pointer position in screen pixels.
	Cursor() (x, y float64)
}

// Device turns a Poller into InputData. It keeps the previous frame to latch presses and to
// notice which aim device the player last touched.
type Device struct {
	Poller   Poller
	Deadzone float64

	current    [ActionCount]bool
	previous   [ActionCount]bool
	lastCursor gamemath.Vec2
	primed     bool
	aimDevice  components.AimDevice
}

func NewDevice(p Poller, deadzone float64) *Device {
	return &Device{Poller: p, Deadzone: deadzone}
}

// JustPressed reports a press that started this frame.
func (d *Device) JustPressed(a ActionID) bool {
	return d.current[a] && !d.previous[a]
}

// Update polls the device and writes the frame's intent into in. origin is the
// character's position on screen, used for pointer aim.
func (d *Device) Update(in *components.InputData, origin gamemath.Vec2) {
	d.previous = d.current
	for a := ActionNone + 1; a < ActionCount; a++ {
		d.current[a] = d.Poller.Pressed(a)
	}

	d.updateMove(in)

	in.Attack = d.current[ActionAttack]
	// Latched until the character consumes them
	if d.JustPressed(ActionDodge) {
		in.Dodge = true
	}
	if d.JustPressed(ActionChangeMask) {
		in.ChangeMask = true
	}

	d.updateAim(in, origin)
}

func (d *Device) updateMove(in *components.InputData) {
	if stick, ok := d.stick(d.Poller.MoveStick()); ok {
		in.Move = stick
		in.AnalogMovement = true
		return
	}
	in.AnalogMovement = false
	in.Move = d.keyAxis(ActionMoveLeft, ActionMoveRight, ActionMoveDown, ActionMoveUp)
}

func (d *Device) updateAim(in *components.InputData, origin gamemath.Vec2) {
	cx, cy := d.Poller.Cursor()
	cursor := gamemath.V(cx, cy)
	moved := d.primed && gamemath.DistanceSq(cursor, d.lastCursor) > 0
	d.lastCursor = cursor
	d.primed = true

	if stick, ok := d.stick(d.Poller.AimStick()); ok {
		d.aimDevice = components.AimDirectional
		in.Aim = stick
	} else if keys := d.keyAxis(ActionAimLeft, ActionAimRight, ActionAimDown, ActionAimUp); gamemath.LengthSq(keys) > 0 {
		d.aimDevice = components.AimDirectional
		in.Aim = keys
	} else if moved || d.aimDevice == components.AimPointer {
		d.aimDevice = components.AimPointer
		in.Aim = gamemath.V(cursor.X-origin.X, origin.Y-cursor.Y)
	} else {
		in.Aim = gamemath.Vec2{}
	}
	in.Device = d.aimDevice
}

// stick flips y to world orientation and drops values inside the deadzone.
func (d *Device) stick(x, y float64) (gamemath.Vec2, bool) {
	v := gamemath.V(x, -y)
	if v.Magnitude() <= d.Deadzone {
		return gamemath.Vec2{}, false
	}
	if gamemath.LengthSq(v) > 1 {
		v = gamemath.Normalize(v)
	}
	return v, true
}

func (d *Device) keyAxis(left, right, down, up ActionID) gamemath.Vec2 {
	var v gamemath.Vec2
	if d.current[left] {
		v.X--
	}
	if d.current[right] {
		v.X++
	}
	if d.current[down] {
		v.Y--
	}
	if d.current[up] {
		v.Y++
	}
	if gamemath.LengthSq(v) == 0 {
		return v
	}
	return gamemath.Normalize(v)
}
