package components

import (
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

type DodgeData struct {
	TimeBuffer float64 // Seconds since the last dodge; available once >= timeout
	Direction  gamemath.Vec2
	Sign       float64 // +1 forward, -1 backward, 0 sideways
}

var Dodge = donburi.NewComponentType[DodgeData]()
