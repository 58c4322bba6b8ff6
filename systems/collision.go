package systems

import (
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MotionIntegrator applies a character's displacement and answers ground queries.
type MotionIntegrator interface {
	// Move applies a planar displacement and a vertical one, returning the planar
	// displacement actually achieved.
	Move(e *donburi.Entry, displacement gamemath.Vec2, dy float64) gamemath.Vec2
	// Grounded probes for ground under the character's feet.
	Grounded(e *donburi.Entry) bool
}

// SpaceIntegrator moves bodies through a resolv space. Walls stop movement per axis,
// characters block each other unless either side has collision suppressed. Height is
// tracked separately and rests on ground regions.
type SpaceIntegrator struct {
	Space           *resolv.Space
	GroundThickness float64
}

func (s *SpaceIntegrator) Move(e *donburi.Entry, displacement gamemath.Vec2, dy float64) gamemath.Vec2 {
	obj := components.Object.Get(e)
	loco := components.Locomotion.Get(e)
	suppressed := components.Combat.Get(e).CollisionSuppressed
	start := obj.Center()

	dx := displacement.X * components.PhysicsScale
	dz := displacement.Y * components.PhysicsScale
	if s.Space == nil {
		obj.X += dx
		obj.Y += dz
	} else {
		obj.X += s.resolveAxis(obj.Object, dx, 0, suppressed)
		obj.Y += s.resolveAxis(obj.Object, 0, dz, suppressed)
	}
	obj.Update()

	before := loco.Height
	loco.Height += dy
	if loco.Height < 0 && before >= 0 && s.overGround(obj.Object) {
		loco.Height = 0
		if loco.VerticalVelocity < 0 {
			loco.VerticalVelocity = 0
		}
	}

	return obj.Center().Sub(start)
}

// Grounded casts a sphere of GroundedRadius at height-GroundedOffset against the floor slab.
func (s *SpaceIntegrator) Grounded(e *donburi.Entry) bool {
	obj := components.Object.Get(e)
	loco := components.Locomotion.Get(e)
	fall := components.Character.Get(e).Config.Fall

	centre := loco.Height - fall.GroundedOffset
	if centre-fall.GroundedRadius > 0 || centre+fall.GroundedRadius < -s.GroundThickness {
		return false
	}
	return s.overGround(obj.Object)
}

// resolveAxis returns how far obj may travel along one axis before touching a blocker,
// in space units.
func (s *SpaceIntegrator) resolveAxis(obj *resolv.Object, dx, dy float64, suppressed bool) float64 {
	move := dx + dy
	if move == 0 {
		return 0
	}

	check := obj.Check(dx, dy, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		return move
	}

	for _, other := range check.Objects {
		if !blocks(obj, other, suppressed) || !overlapsAt(obj, other, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(other)
		limit := contact.X()
		if dy != 0 {
			limit = contact.Y()
		}
		if move > 0 {
			move = math.Max(0, math.Min(move, limit))
		} else {
			move = math.Min(0, math.Max(move, limit))
		}
	}
	return move
}

func blocks(self, other *resolv.Object, suppressed bool) bool {
	if other == self {
		return false
	}
	if other.HasTags(tags.ResolvSolid) {
		return true
	}
	if suppressed || !other.HasTags(tags.ResolvCharacter) {
		return false
	}
	// Bodies that already overlap are let apart.
	if overlapsAt(self, other, 0, 0) {
		return false
	}
	if entry, ok := other.Data.(*donburi.Entry); ok && entry.Valid() {
		if components.Combat.Get(entry).CollisionSuppressed || components.Health.Get(entry).Dead {
			return false
		}
	}
	return true
}

func overlapsAt(a, b *resolv.Object, dx, dy float64) bool {
	return a.X+dx < b.X+b.W && a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+dy+a.H > b.Y
}

// overGround reports whether the middle of obj's footprint lies on a ground region.
func (s *SpaceIntegrator) overGround(obj *resolv.Object) bool {
	if s.Space == nil {
		return true
	}
	check := obj.Check(0, 0, tags.ResolvGround)
	if check == nil {
		return false
	}

	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	for _, g := range check.ObjectsByTags(tags.ResolvGround) {
		if cx >= g.X && cx <= g.X+g.W && cy >= g.Y && cy <= g.Y+g.H {
			return true
		}
	}
	return false
}
