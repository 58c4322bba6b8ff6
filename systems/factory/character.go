package factory

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

// CharacterOptions carries what differs between a player and an enemy at spawn.
type CharacterOptions struct {
	Faction     components.Faction
	Behavior    components.Behavior
	Animator    components.Animator
	AttackIndex int
	Unlocked    []int
	ResolvTag   string
}

// setupCharacter fills the components every character shares. Every attack slot starts ready.
func setupCharacter(w donburi.World, e *donburi.Entry, cfg *config.CharacterConfig, pos gamemath.Vec2, opts CharacterOptions) {
	size := cfg.BodyRadius * 2
	obj := components.NewObject(pos.X-cfg.BodyRadius, pos.Y-cfg.BodyRadius, size, size, tags.ResolvCharacter, opts.ResolvTag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Character.SetValue(e, components.CharacterData{
		Faction:  opts.Faction,
		Config:   cfg,
		Behavior: opts.Behavior,
	})

	slots := make([]components.AttackSlot, len(cfg.Attacks))
	for i, a := range cfg.Attacks {
		slots[i] = components.AttackSlot{TimeBuffer: a.TotalTime()}
	}
	for _, idx := range opts.Unlocked {
		slots[idx].Unlocked = true
	}

	weapon := components.NewObject(pos.X, pos.Y, 1, 1, tags.ResolvWeapon)
	weapon.Data = e

	components.Combat.SetValue(e, components.CombatData{
		Slots:           slots,
		AttackIndex:     opts.AttackIndex,
		AimDirection:    gamemath.Forward(0),
		AttackedTargets: make(map[donburi.Entity]struct{}),
		Weapon:          weapon,
	})
	components.Dodge.SetValue(e, components.DodgeData{
		TimeBuffer: cfg.Dodge.Timeout,
		Direction:  gamemath.Forward(0),
	})
	components.Locomotion.SetValue(e, components.LocomotionData{
		Grounded:    true,
		MotionSpeed: 1,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: cfg.MaxHealth,
		Max:     cfg.MaxHealth,
	})
	components.Animation.SetValue(e, components.NewAnimationData(opts.Animator))
}
