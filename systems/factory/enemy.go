package factory

import (
	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy locked to the brain's weapon slot.
func CreateEnemy(w donburi.World, t *config.Tuning, pos gamemath.Vec2, behavior components.Behavior, animator components.Animator) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	setupCharacter(w, enemy, &t.Enemy, pos, CharacterOptions{
		Faction:     components.FactionEnemy,
		Behavior:    behavior,
		Animator:    animator,
		AttackIndex: t.Brain.Weapon,
		Unlocked:    []int{t.Brain.Weapon},
		ResolvTag:   tags.ResolvEnemy,
	})
	components.Brain.SetValue(enemy, components.BrainData{
		Weapon:     t.Brain.Weapon,
		Difficulty: t.Brain.Current(),
		AlignDot:   t.Brain.AlignDot,
	})

	return enemy
}
