package archetypes

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

var (
	character = []donburi.IComponentType{
		components.Character,
		components.Object,
		components.Input,
		components.Combat,
		components.Dodge,
		components.Locomotion,
		components.Health,
		components.Knockback,
		components.Preview,
		components.Animation,
	}
	Player = newArchetype(append([]donburi.IComponentType{
		tags.Player,
		components.Player,
	}, character...)...)
	Enemy = newArchetype(append([]donburi.IComponentType{
		tags.Enemy,
		components.Brain,
	}, character...)...)
	Pedestal = newArchetype(
		tags.Pedestal,
		components.Pedestal,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
