package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// KnockbackData accumulates hit impulses. It decays once per fixed step.
type KnockbackData struct {
	Velocity gamemath.Vec2
}

var Knockback = donburi.NewComponentType[KnockbackData]()
