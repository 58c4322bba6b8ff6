package factory

import (
	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := components.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}

// CreateGround adds a walkable floor region. Anything outside every ground region is a pit.
func CreateGround(w donburi.World, x, y, width, height float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	obj := components.NewObject(x, y, width, height, tags.ResolvGround)
	obj.Data = ground

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return ground
}
