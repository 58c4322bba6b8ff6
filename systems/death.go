package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/yohamta/donburi"
)

// UpdateDeaths removes dead enemies from the space and the world. Dead players stay
// so the scene can report them.
func UpdateDeaths(w donburi.World) {
	var dead []*donburi.Entry
	components.Brain.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Dead {
			dead = append(dead, e)
		}
	})

	spaceEntry, hasSpace := components.Space.First(w)
	for _, e := range dead {
		disableWeapon(w, components.Combat.Get(e))
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		w.Remove(e.Entity())
	}
}
