package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PedestalData struct {
	Position  gamemath.Vec2
	Radius    float64
	MaskIndex int
}

var Pedestal = donburi.NewComponentType[PedestalData]()
