package factory

import (
	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreatePedestal(w donburi.World, p config.PedestalConfig) *donburi.Entry {
	pedestal := archetypes.Pedestal.Spawn(w)
	components.Pedestal.SetValue(pedestal, components.PedestalData{
		Position:  gamemath.V(p.Position.X, p.Position.Y),
		Radius:    p.Radius,
		MaskIndex: p.MaskIndex,
	})
	return pedestal
}
