package systems

import (
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// updateAttack advances every slot's timer, then runs the selected slot through
// ready -> preview -> active -> cooldown.
func updateAttack(f *frame) {
	combat := f.combat
	attacks := f.cfg.Attacks

	for i := range combat.Slots {
		// Clamp every tick: a retune can shorten the cycle.
		combat.Slots[i].TimeBuffer = math.Min(combat.Slots[i].TimeBuffer+f.dt, attacks[i].TotalTime())
	}

	if !f.behavior.GateAttack(f.entry) {
		return
	}
	if !f.allowLocomotion || combat.AttackIndex < 0 || combat.AttackIndex >= len(combat.Slots) {
		return
	}

	def := &attacks[combat.AttackIndex]
	slot := &combat.Slots[combat.AttackIndex]

	if f.input.Attack && slot.TimeBuffer >= def.TotalTime() {
		combat.IsPreviewing = true
	}

	if combat.IsPreviewing {
		if !combat.IsAttacking {
			combat.AttackOrigin = f.obj.Center()
			if f.input.Attack {
				combat.PreviewHeld += f.dt
			}
		}
		showPreview(f.preview, combat, def, f.dt)

		if !f.input.Attack && !combat.IsAttacking {
			startAttack(f, def, slot)
		}
	}

	if slot.TimeBuffer > def.Duration {
		if combat.IsAttacking {
			endAttack(f)
		}
		return
	}
	if !combat.IsAttacking {
		return
	}

	if def.Kind.Lunges() {
		step := def.Movement.Z / def.Duration * f.dt
		f.movement = f.movement.Add(combat.AimDirection.MulScalar(step))
		combat.CollisionSuppressed = true
	}
	f.loco.Speed = 0
	f.loco.AnimationBlend = 0
	f.allowLocomotion = false
}

func startAttack(f *frame, def *config.AttackDefinition, slot *components.AttackSlot) {
	combat := f.combat

	slot.TimeBuffer = 0
	combat.IsAttacking = true
	combat.ClearHits()
	f.loco.Facing = gamemath.Heading(combat.AimDirection)

	enableWeapon(f.world, combat)
	f.preview.FillTween = gween.New(1, 0, float32(def.Duration), ease.Linear)
	f.preview.Fill = 1

	AttackStartedEvent.Publish(f.world, AttackStarted{
		Attacker: f.entry,
		Index:    combat.AttackIndex,
		Kind:     def.Kind,
	})
	PlaySFX(f.world, config.SoundAttack, f.obj.Center())
}

func endAttack(f *frame) {
	combat := f.combat

	combat.IsPreviewing = false
	combat.PreviewHeld = 0
	combat.IsAttacking = false
	combat.CollisionSuppressed = false
	combat.ClearHits()
	disableWeapon(f.world, combat)
	hidePreview(f.preview)
}

// showPreview lays out the indicator for the selected attack around the captured origin.
func showPreview(p *components.PreviewData, combat *components.CombatData, def *config.AttackDefinition, dt float64) {
	aim := combat.AimDirection

	p.Visible = true
	p.Color = def.Color
	p.Forward = aim
	p.Radius = def.AoE.X

	if def.Kind.Boxed() {
		p.Shape = components.PreviewBox
		p.Arrow = def.Kind == config.KindSpear
		p.Scale = gamemath.V(def.AoE.X, def.AoE.Y).MulScalar(0.5)
		p.Position = combat.AttackOrigin.Add(aim.MulScalar(def.AoE.Y * 0.5))
	} else {
		p.Shape = components.PreviewCircle
		p.Arrow = false
		p.Scale = gamemath.V(def.AoE.Y, def.AoE.Y)
		p.Position = combat.AttackOrigin.Add(aim.MulScalar(def.ForwardOffset))
	}

	switch {
	case combat.IsAttacking && p.FillTween != nil:
		fill, _ := p.FillTween.Update(float32(dt))
		p.Fill = float64(fill)
	case !combat.IsAttacking:
		p.Fill = 1
	}
}

func hidePreview(p *components.PreviewData) {
	p.Visible = false
	p.FillTween = nil
	p.Fill = 0
}

// SelectAttack picks the unlocked slot whose selection direction best matches aim.
// It returns -1 when nothing points the same way as aim or the best match is tied.
func SelectAttack(attacks []config.AttackDefinition, slots []components.AttackSlot, aim gamemath.Vec2) int {
	const tieEpsilon = 1e-9

	best, bestDot, tied := -1, 0.0, false
	for i := range slots {
		if i >= len(attacks) || !slots[i].Unlocked {
			continue
		}
		sel := gamemath.Normalize(gamemath.V(attacks[i].SelectionDirection.X, attacks[i].SelectionDirection.Y))
		d := gamemath.Dot(sel, aim)
		switch {
		case d > bestDot+tieEpsilon:
			best, bestDot, tied = i, d, false
		case best >= 0 && math.Abs(d-bestDot) <= tieEpsilon:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

// selectAttack switches the active slot. A preview of the old slot is dropped.
func selectAttack(e *donburi.Entry, index int) {
	combat := components.Combat.Get(e)
	if combat.AttackIndex == index {
		return
	}
	combat.AttackIndex = index
	cancelPreview(e)
}

func cancelPreview(e *donburi.Entry) {
	combat := components.Combat.Get(e)
	if combat.IsAttacking || !combat.IsPreviewing {
		return
	}
	combat.IsPreviewing = false
	combat.PreviewHeld = 0
	hidePreview(components.Preview.Get(e))
}
