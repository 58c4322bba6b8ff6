package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AimDevice tells the input adapter how to turn device state into an aim vector.
type AimDevice int

const (
	AimDirectional AimDevice = iota // Right stick or keys, already a direction
	AimPointer                      // Mouse cursor, relative to the character on screen
)

// InputData is one frame of control intent. Humans and brains write the same fields.
type InputData struct {
	Move gamemath.Vec2
	Aim  gamemath.Vec2

	// Attack is a held state: press starts a preview, release commits it.
	Attack bool
	// Dodge and ChangeMask latch on press and stay set until consumed.
	Dodge      bool
	ChangeMask bool

	AnalogMovement bool
	Device         AimDevice
}

var Input = donburi.NewComponentType[InputData]()

// ConsumeDodge clears a pending dodge press, reporting whether there was one.
func (in *InputData) ConsumeDodge() bool {
	pressed := in.Dodge
	in.Dodge = false
	return pressed
}

// ConsumeChangeMask clears a pending mask-change press, reporting whether there was one.
func (in *InputData) ConsumeChangeMask() bool {
	pressed := in.ChangeMask
	in.ChangeMask = false
	return pressed
}

// InputMagnitude is the stick magnitude for analog input and 1 otherwise.
func (in *InputData) InputMagnitude() float64 {
	if in.AnalogMovement {
		return in.Move.Magnitude()
	}
	return 1
}
