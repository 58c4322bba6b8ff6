package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HitResolver applies damage and knockback from weapon overlaps, at most once per
// target per activation.
type HitResolver struct {
	Knockback config.KnockbackConfig
}

// OnOverlap is the OverlapEvent handler.
func (r *HitResolver) OnOverlap(w donburi.World, o Overlap) {
	r.Resolve(w, o.Attacker, o.Target)
}

// Resolve lands attacker's running attack on target. It reports whether damage was applied.
// Only the target's health and knockback and the attacker's hit set are written, so it is
// safe to call at any point in a tick.
func (r *HitResolver) Resolve(w donburi.World, attacker, target *donburi.Entry) bool {
	if attacker == nil || target == nil || !attacker.Valid() || !target.Valid() {
		return false
	}
	if attacker.Entity() == target.Entity() {
		return false
	}

	combat := components.Combat.Get(attacker)
	if combat.AttackIndex < 0 || !combat.IsAttacking || components.Health.Get(attacker).Dead {
		return false
	}

	attackerChar := components.Character.Get(attacker)
	if attackerChar.Faction == components.Character.Get(target).Faction {
		return false
	}

	health := components.Health.Get(target)
	if health.Dead || combat.HasHit(target.Entity()) {
		return false
	}
	combat.MarkHit(target.Entity())

	def := &attackerChar.Config.Attacks[combat.AttackIndex]
	health.Current -= def.Damage

	targetPos := components.Object.Get(target).Center()
	away := gamemath.NormalizeSafe(targetPos.Sub(components.Object.Get(attacker).Center()), combat.AimDirection)
	dir := away
	if def.Kind.BlendsKnockback() {
		dir = combat.AimDirection.Add(away).MulScalar(0.5)
	}
	impulse := dir.MulScalar(def.KnockbackForce * r.Knockback.Scale)

	knock := components.Knockback.Get(target)
	knock.Velocity = knock.Velocity.Add(impulse)

	HitLandedEvent.Publish(w, HitLanded{
		Attacker:  attacker,
		Target:    target,
		Damage:    def.Damage,
		Knockback: impulse,
	})
	PlaySFX(w, config.SoundHit, targetPos)
	return true
}

// UpdateKnockback decays every knockback velocity by one fixed step.
func UpdateKnockback(w donburi.World, decay float64) {
	components.Knockback.Each(w, func(e *donburi.Entry) {
		k := components.Knockback.Get(e)
		k.Velocity = k.Velocity.MulScalar(decay)
	})
}
