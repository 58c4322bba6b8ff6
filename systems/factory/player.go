package factory

import (
	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, t *config.Tuning, pos gamemath.Vec2, behavior components.Behavior, animator components.Animator) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	setupCharacter(w, player, &t.Player, pos, CharacterOptions{
		Faction:     components.FactionPlayer,
		Behavior:    behavior,
		Animator:    animator,
		AttackIndex: t.Player.StartingAttack,
		Unlocked:    t.Player.UnlockedAttacks,
		ResolvTag:   tags.ResolvPlayer,
	})
	components.Player.SetValue(player, components.PlayerData{})

	return player
}
