package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsScale is resolv units per world unit. resolv snaps cell bounds to whole units,
// so bodies live in a scaled-up space.
const PhysicsScale = 100.0

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the arena collision space (singleton component)
var Space = donburi.NewComponentType[resolv.Space]()

// NewObject builds a rectangular resolv body from world-unit bounds.
func NewObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*PhysicsScale, y*PhysicsScale, w*PhysicsScale, h*PhysicsScale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*PhysicsScale, h*PhysicsScale))
	return obj
}

// Bounds is the body's footprint in world units.
func (o *ObjectData) Bounds() (x, y, w, h float64) {
	return o.X / PhysicsScale, o.Y / PhysicsScale, o.W / PhysicsScale, o.H / PhysicsScale
}

// Center is the middle of the body's footprint in world x/z.
func (o *ObjectData) Center() gamemath.Vec2 {
	return gamemath.V((o.X+o.W/2)/PhysicsScale, (o.Y+o.H/2)/PhysicsScale)
}

// MoveCenterTo places the footprint so its middle sits at p.
func (o *ObjectData) MoveCenterTo(p gamemath.Vec2) {
	o.X = p.X*PhysicsScale - o.W/2
	o.Y = p.Y*PhysicsScale - o.H/2
	o.Update()
}
