package systems

import (
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

// hitShape is the area an active attack covers: a circle, or a box that starts at the
// attacker and extends along the aim.
type hitShape struct {
	circle bool
	centre gamemath.Vec2
	radius float64

	origin    gamemath.Vec2
	axis      gamemath.Vec2
	halfWidth float64
	length    float64
}

func newHitShape(def *config.AttackDefinition, pos, aim gamemath.Vec2) hitShape {
	if def.Kind.Boxed() {
		return hitShape{
			origin:    pos,
			axis:      aim,
			halfWidth: def.AoE.X / 2,
			length:    def.AoE.Y,
		}
	}
	return hitShape{
		circle: true,
		centre: pos.Add(aim.MulScalar(def.ForwardOffset)),
		radius: def.AoE.Y / 2,
	}
}

func (h hitShape) corners() [4]gamemath.Vec2 {
	side := gamemath.V(h.axis.Y, -h.axis.X).MulScalar(h.halfWidth)
	far := h.origin.Add(h.axis.MulScalar(h.length))
	return [4]gamemath.Vec2{
		h.origin.Add(side),
		h.origin.Sub(side),
		far.Sub(side),
		far.Add(side),
	}
}

// bounds is the axis-aligned box around the shape as x, y, w, h.
func (h hitShape) bounds() (float64, float64, float64, float64) {
	if h.circle {
		return h.centre.X - h.radius, h.centre.Y - h.radius, h.radius * 2, h.radius * 2
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range h.corners() {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// intersects tests the shape against an axis-aligned rectangle.
func (h hitShape) intersects(x, y, w, ht float64) bool {
	if h.circle {
		nx := math.Max(x, math.Min(h.centre.X, x+w))
		ny := math.Max(y, math.Min(h.centre.Y, y+ht))
		return gamemath.DistanceSq(h.centre, gamemath.V(nx, ny)) <= h.radius*h.radius
	}

	rect := [4]gamemath.Vec2{
		gamemath.V(x, y), gamemath.V(x+w, y), gamemath.V(x+w, y+ht), gamemath.V(x, y+ht),
	}
	box := h.corners()
	axes := []gamemath.Vec2{
		gamemath.V(1, 0), gamemath.V(0, 1), h.axis, gamemath.V(h.axis.Y, -h.axis.X),
	}
	for _, axis := range axes {
		aMin, aMax := project(box, axis)
		bMin, bMax := project(rect, axis)
		if aMax < bMin || bMax < aMin {
			return false
		}
	}
	return true
}

func project(points [4]gamemath.Vec2, axis gamemath.Vec2) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := gamemath.Dot(p, axis)
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	return lo, hi
}

func enableWeapon(w donburi.World, combat *components.CombatData) {
	if combat.WeaponActive || combat.Weapon == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(combat.Weapon)
		combat.WeaponActive = true
	}
}

func disableWeapon(w donburi.World, combat *components.CombatData) {
	if !combat.WeaponActive {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(combat.Weapon)
	}
	combat.WeaponActive = false
}

// UpdateWeaponOverlaps fits every active weapon collider to its attack's shape and
// publishes an Overlap for each character body it touches, then delivers them.
func UpdateWeaponOverlaps(w donburi.World) {
	components.Combat.Each(w, func(e *donburi.Entry) {
		combat := components.Combat.Get(e)
		if !combat.IsAttacking || !combat.WeaponActive || combat.AttackIndex < 0 {
			return
		}

		def := &components.Character.Get(e).Config.Attacks[combat.AttackIndex]
		shape := newHitShape(def, components.Object.Get(e).Center(), combat.AimDirection)

		x, y, bw, bh := shape.bounds()
		weapon := combat.Weapon
		weapon.X, weapon.Y = x*components.PhysicsScale, y*components.PhysicsScale
		weapon.W, weapon.H = bw*components.PhysicsScale, bh*components.PhysicsScale
		weapon.Update()

		check := weapon.Check(0, 0, tags.ResolvCharacter)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			target, ok := obj.Data.(*donburi.Entry)
			if !ok || !target.Valid() || target.Entity() == e.Entity() {
				continue
			}
			body := components.ObjectData{Object: obj}
			if shape.intersects(body.Bounds()) {
				OverlapEvent.Publish(w, Overlap{Attacker: e, Target: target})
			}
		}
	})

	OverlapEvent.ProcessEvents(w)
}
