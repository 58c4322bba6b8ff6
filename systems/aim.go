package systems

import (
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
)

// updateAim resolves the frame's aim. Aim direction only moves while no attack is active.
func updateAim(f *frame) {
	aim := f.input.Aim
	if gamemath.LengthSq(aim) > config.InputEpsilon {
		dir := gamemath.Normalize(aim)
		f.combat.AimInput = dir
		if !f.combat.IsAttacking {
			if world, ok := f.behavior.AimDirection(f.entry, dir); ok {
				f.combat.AimDirection = world
			}
		}
	} else {
		f.combat.AimInput = gamemath.Vec2{}
	}

	f.behavior.AfterAim(f.entry)
}
