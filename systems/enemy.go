package systems

import (
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateBrains points every enemy at the first living player and writes its inputs.
func UpdateBrains(w donburi.World, dt float64) {
	target := firstLivingPlayer(w)
	components.Brain.Each(w, func(e *donburi.Entry) {
		components.Brain.Get(e).Target = target
		decideBrain(e, dt)
	})
}

func firstLivingPlayer(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	components.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && !components.Health.Get(e).Dead {
			found = e
		}
	})
	return found
}

// brainPhases splits one attack cycle. The buffer first runs through the weapon's
// active and cooldown time, then the reaction time, then holds the attack for the preview.
type brainPhases struct {
	attackDuration float64
	previewStart   float64
	previewEnd     float64
}

func (p brainPhases) total() float64 { return p.previewEnd }

// pressing reports whether the attack button is held at buffer.
func (p brainPhases) pressing(buffer float64) bool {
	return buffer > p.previewStart && buffer < p.previewEnd
}

// decideBrain turns the enemy's view of its target into synthetic input.
func decideBrain(e *donburi.Entry, dt float64) {
	brain := components.Brain.Get(e)
	input := components.Input.Get(e)

	if components.Health.Get(e).Dead {
		return
	}
	if brain.Target == nil || !brain.Target.Valid() || components.Health.Get(brain.Target).Dead {
		input.Move = gamemath.Vec2{}
		input.Aim = gamemath.Vec2{}
		input.Attack = false
		return
	}

	cfg := components.Character.Get(e).Config
	if brain.Weapon < 0 || brain.Weapon >= len(cfg.Attacks) {
		return
	}
	def := &cfg.Attacks[brain.Weapon]

	attackDuration := def.TotalTime()
	previewStart := attackDuration + brain.Difficulty.ReactionTime
	phases := brainPhases{
		attackDuration: attackDuration,
		previewStart:   previewStart,
		previewEnd:     previewStart + brain.Difficulty.AttackPreviewDuration,
	}

	pos := components.Object.Get(e).Center()
	toTarget := components.Object.Get(brain.Target).Center().Sub(pos)
	facing := gamemath.Forward(components.Locomotion.Get(e).Facing)
	dir := gamemath.NormalizeSafe(toTarget, facing)

	reach := def.Reach()
	inReach := gamemath.LengthSq(toTarget) <= reach*reach
	retreating := brain.Difficulty.RetreatHealthFraction > 0 &&
		components.Health.Get(e).Fraction() <= brain.Difficulty.RetreatHealthFraction

	buffer := brain.AttackTimeBuffer
	input.Attack = phases.pressing(buffer)

	input.Aim = gamemath.Vec2{}
	if buffer < phases.previewStart && (inReach || gamemath.Dot(facing, dir) >= brain.AlignDot) {
		input.Aim = dir
	}

	switch {
	case retreating:
		input.Move = gamemath.Neg(dir)
		buffer = math.Min(buffer, phases.attackDuration)
	case !inReach:
		input.Move = dir
		buffer = math.Min(buffer, phases.attackDuration)
	default:
		input.Move = gamemath.Vec2{}
		buffer = advanceBuffer(buffer, dt, phases)
	}
	brain.AttackTimeBuffer = buffer
}

func advanceBuffer(buffer, dt float64, p brainPhases) float64 {
	if buffer < p.total() {
		return buffer + dt
	}
	return 0
}
