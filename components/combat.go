package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AttackSlot is the runtime state kept for one catalog entry.
type AttackSlot struct {
	Unlocked   bool
	TimeBuffer float64 // Seconds since the last activation, saturating at duration+cooldown
}

type CombatData struct {
	Slots       []AttackSlot // Parallel to the character's attack catalog
	AttackIndex int          // -1 = nothing selected

	IsAttacking  bool
	IsPreviewing bool
	PreviewHeld  float64 // Seconds the attack button has been held while previewing

	AttackOrigin gamemath.Vec2
	AimDirection gamemath.Vec2
	AimInput     gamemath.Vec2

	// AttackedTargets holds everyone hit by the running activation.
	AttackedTargets map[donburi.Entity]struct{}

	CollisionSuppressed bool
	Weapon              *resolv.Object
	WeaponActive        bool // Weapon is registered with the space
}

var Combat = donburi.NewComponentType[CombatData]()

// HasHit reports whether target was already hit by the running activation.
func (c *CombatData) HasHit(target donburi.Entity) bool {
	_, ok := c.AttackedTargets[target]
	return ok
}

func (c *CombatData) MarkHit(target donburi.Entity) {
	if c.AttackedTargets == nil {
		c.AttackedTargets = make(map[donburi.Entity]struct{})
	}
	c.AttackedTargets[target] = struct{}{}
}

func (c *CombatData) ClearHits() {
	for k := range c.AttackedTargets {
		delete(c.AttackedTargets, k)
	}
}
