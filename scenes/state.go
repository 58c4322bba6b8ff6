package scenes

import (
	"github.com/automoto/maskfall/components"
	"github.com/yohamta/donburi"
)

// CharacterState is the JSON view of one character.
type CharacterState struct {
	ID          int     `json:"id"`
	Faction     string  `json:"faction"`
	X           float64 `json:"x"`
	Z           float64 `json:"z"`
	Height      float64 `json:"height"`
	Facing      float64 `json:"facing"`
	Health      float64 `json:"health"`
	Dead        bool    `json:"dead"`
	AttackIndex int     `json:"attack_index"`
	Attacking   bool    `json:"attacking"`
	Previewing  bool    `json:"previewing"`
	Grounded    bool    `json:"grounded"`
}

// State is a point-in-time summary of the world.
type State struct {
	Time       float64          `json:"time"`
	Ticks      uint64           `json:"ticks"`
	FixedSteps uint64           `json:"fixed_steps"`
	Characters []CharacterState `json:"characters"`
}

func factionName(f components.Faction) string {
	if f == components.FactionEnemy {
		return "enemy"
	}
	return "player"
}

// State summarises every character.
func (w *World) State() State {
	s := State{
		Time:       w.Time,
		Ticks:      w.Ticks,
		FixedSteps: w.FixedSteps,
	}
	components.Character.Each(w.World, func(e *donburi.Entry) {
		pos := components.Object.Get(e).Center()
		loco := components.Locomotion.Get(e)
		combat := components.Combat.Get(e)
		health := components.Health.Get(e)

		s.Characters = append(s.Characters, CharacterState{
			ID:          int(e.Entity().Id()),
			Faction:     factionName(components.Character.Get(e).Faction),
			X:           pos.X,
			Z:           pos.Y,
			Height:      loco.Height,
			Facing:      loco.Facing,
			Health:      health.Current,
			Dead:        health.Dead,
			AttackIndex: combat.AttackIndex,
			Attacking:   combat.IsAttacking,
			Previewing:  combat.IsPreviewing,
			Grounded:    loco.Grounded,
		})
	})
	return s
}
