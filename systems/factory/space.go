package factory

import (
	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision space for an arena measured in world units.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	scale := int(components.PhysicsScale)
	spaceData := resolv.NewSpace(width*scale, height*scale, cellWidth*scale, cellHeight*scale)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
