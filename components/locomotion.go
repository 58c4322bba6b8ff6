package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LocomotionData struct {
	Speed          float64
	AnimationBlend float64
	MotionSpeed    float64

	Facing           float64 // Yaw the body is turned to
	TargetRotation   float64 // Yaw locomotion moves along
	RotationVelocity float64

	VerticalVelocity float64
	Height           float64
	Grounded         bool
	FreeFall         bool
	FallTimeBuffer   float64

	// Velocity is the planar velocity actually achieved last frame.
	Velocity gamemath.Vec2

	StrideDistance float64
	JustLanded     bool
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
