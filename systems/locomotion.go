package systems

import (
	"math"

	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
)

// updateLocomotion turns move input into this frame's walk displacement. When dodge or
// attack already own the frame it only keeps the target rotation in step with their movement.
func updateLocomotion(f *frame) {
	loco := f.loco
	input := f.input
	mv := f.cfg.Movement

	if !f.allowLocomotion {
		if gamemath.LengthSq(f.movement) > config.InputEpsilon {
			loco.TargetRotation = gamemath.Heading(f.movement)
		}
		return
	}

	hasInput := gamemath.LengthSq(input.Move) >= config.InputEpsilon
	targetSpeed := mv.MoveSpeed
	if !hasInput {
		targetSpeed = 0
	}

	// Knockback is not the character's own speed
	current := math.Max(0, loco.Velocity.Magnitude()-f.knock.Velocity.Magnitude())
	magnitude := input.InputMagnitude()

	if current < targetSpeed-mv.SpeedOffset || current > targetSpeed+mv.SpeedOffset {
		loco.Speed = gamemath.RoundMillis(gamemath.Lerp(current, targetSpeed*magnitude, f.dt*mv.SpeedChangeRate))
	} else {
		loco.Speed = targetSpeed
	}

	loco.AnimationBlend = gamemath.Lerp(loco.AnimationBlend, targetSpeed, f.dt*mv.SpeedChangeRate)
	if loco.AnimationBlend < mv.BlendCutoff {
		loco.AnimationBlend = 0
	}
	loco.MotionSpeed = magnitude

	if hasInput {
		loco.TargetRotation = f.behavior.MoveHeading(gamemath.Normalize(input.Move))
		loco.Facing = gamemath.WrapAngle(gamemath.SmoothDampAngle(
			loco.Facing, loco.TargetRotation, &loco.RotationVelocity, mv.RotationSmoothTime, f.dt))
	}

	step := gamemath.Forward(loco.TargetRotation).MulScalar(loco.Speed * f.dt)
	f.movement = f.movement.Add(step)
}
