package systems

import (
	"github.com/automoto/maskfall/shared/gamemath"
)

// updateDodge triggers a dodge away from the aim direction and, for the whole timeout window,
// owns the frame's movement.
func updateDodge(f *frame) {
	d := f.dodge
	cfg := f.cfg.Dodge

	if d.TimeBuffer < cfg.Timeout {
		d.TimeBuffer += f.dt
	} else if f.loco.Grounded && !f.combat.IsAttacking && f.input.ConsumeDodge() {
		d.Direction = gamemath.Neg(f.combat.AimDirection)
		d.TimeBuffer = 0
		d.Sign = gamemath.Sign(gamemath.Dot(d.Direction, gamemath.Forward(f.loco.Facing)))
		if d.Sign != 0 {
			f.loco.Facing = gamemath.Heading(d.Direction.MulScalar(d.Sign))
		}
		f.dodgeTriggered = true
		DodgedEvent.Publish(f.world, Dodged{Entry: f.entry, Sign: d.Sign})
	}

	if d.TimeBuffer >= cfg.Timeout {
		return
	}

	if dodgeBurstActive(d.Sign, d.TimeBuffer, cfg.Time, cfg.BackwardDelay) {
		step := cfg.Distance / cfg.Time * f.dt
		f.movement = f.movement.Add(d.Direction.MulScalar(step))
	}
	f.loco.Speed = 0
	f.loco.AnimationBlend = 0
	f.allowLocomotion = false
}

// dodgeBurstActive reports whether the dodge moves the character at time t into its window.
// Backward dodges start late by backwardDelay.
func dodgeBurstActive(sign, t, dodgeTime, backwardDelay float64) bool {
	switch {
	case sign > 0:
		return t < dodgeTime
	case sign < 0:
		return t > backwardDelay && t < dodgeTime+backwardDelay
	}
	return false
}
