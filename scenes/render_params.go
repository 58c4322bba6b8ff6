package scenes

import (
	"image/color"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/tags"
	"github.com/yohamta/donburi"
)

// Body is one character as the renderer sees it.
type Body struct {
	Entity    donburi.Entity
	Faction   components.Faction
	Position  gamemath.Vec2
	Radius    float64
	Facing    float64
	Height    float64
	Health    float64 // Fraction of max
	Dead      bool
	Attacking bool
	Dodging   bool
}

// Indicator is an attack preview to draw.
type Indicator struct {
	Owner    donburi.Entity
	Shape    components.PreviewShape
	Fill     float64
	Color    color.RGBA
	Arrow    bool
	Radius   float64
	Scale    gamemath.Vec2
	Position gamemath.Vec2
	Forward  gamemath.Vec2
}

// Region is an axis-aligned rectangle in world units.
type Region struct {
	X, Y, W, H float64
}

type Marker struct {
	Position  gamemath.Vec2
	Radius    float64
	MaskIndex int
	Active    bool // The player is in range
}

// RenderParams is the scene-wide state handed to whatever draws the arena. It is
// rebuilt every tick.
type RenderParams struct {
	Ground     []Region
	Walls      []Region
	Pedestals  []Marker
	Bodies     []Body
	Indicators []Indicator
}

// CollectRenderParams refills params from the world.
func CollectRenderParams(w donburi.World, params *RenderParams) {
	params.Ground = params.Ground[:0]
	params.Walls = params.Walls[:0]
	params.Pedestals = params.Pedestals[:0]
	params.Bodies = params.Bodies[:0]
	params.Indicators = params.Indicators[:0]

	tags.Ground.Each(w, func(e *donburi.Entry) {
		x, y, width, height := components.Object.Get(e).Bounds()
		params.Ground = append(params.Ground, Region{X: x, Y: y, W: width, H: height})
	})
	tags.Wall.Each(w, func(e *donburi.Entry) {
		x, y, width, height := components.Object.Get(e).Bounds()
		params.Walls = append(params.Walls, Region{X: x, Y: y, W: width, H: height})
	})

	var active *donburi.Entry
	components.Player.Each(w, func(e *donburi.Entry) {
		if p := components.Player.Get(e).Pedestal; p != nil && active == nil {
			active = p
		}
	})
	components.Pedestal.Each(w, func(e *donburi.Entry) {
		ped := components.Pedestal.Get(e)
		params.Pedestals = append(params.Pedestals, Marker{
			Position:  ped.Position,
			Radius:    ped.Radius,
			MaskIndex: ped.MaskIndex,
			Active:    active != nil && active.Entity() == e.Entity(),
		})
	})

	components.Character.Each(w, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		loco := components.Locomotion.Get(e)
		health := components.Health.Get(e)
		dodge := components.Dodge.Get(e)

		params.Bodies = append(params.Bodies, Body{
			Entity:    e.Entity(),
			Faction:   char.Faction,
			Position:  components.Object.Get(e).Center(),
			Radius:    char.Config.BodyRadius,
			Facing:    loco.Facing,
			Height:    loco.Height,
			Health:    health.Fraction(),
			Dead:      health.Dead,
			Attacking: components.Combat.Get(e).IsAttacking,
			Dodging:   dodge.TimeBuffer < char.Config.Dodge.Timeout,
		})

		preview := components.Preview.Get(e)
		if !preview.Visible {
			return
		}
		params.Indicators = append(params.Indicators, Indicator{
			Owner:    e.Entity(),
			Shape:    preview.Shape,
			Fill:     preview.Fill,
			Color:    preview.Color,
			Arrow:    preview.Arrow,
			Radius:   preview.Radius,
			Scale:    preview.Scale,
			Position: preview.Position,
			Forward:  preview.Forward,
		})
	})
}
