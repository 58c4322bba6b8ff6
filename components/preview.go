package components

import (
	"image/color"

	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PreviewShape int

const (
	PreviewCircle PreviewShape = iota
	PreviewBox
)

func (s PreviewShape) String() string {
	if s == PreviewBox {
		return "box"
	}
	return "circle"
}

// PreviewData is the attack-preview indicator handed to the renderer.
type PreviewData struct {
	Visible  bool
	Shape    PreviewShape
	Fill     float64
	Color    color.RGBA
	Arrow    bool
	Radius   float64
	Scale    gamemath.Vec2 // X across the aim, Y along it
	Position gamemath.Vec2
	Forward  gamemath.Vec2

	// FillTween drains Fill while the attack is active.
	FillTween *gween.Tween
}

var Preview = donburi.NewComponentType[PreviewData]()
