package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// frame bundles everything one character tick reads and writes.
type frame struct {
	world    donburi.World
	entry    *donburi.Entry
	dt       float64
	cfg      *config.CharacterConfig
	char     *components.CharacterData
	behavior components.Behavior
	obj      *components.ObjectData
	input    *components.InputData
	combat   *components.CombatData
	dodge    *components.DodgeData
	loco     *components.LocomotionData
	health   *components.HealthData
	knock    *components.KnockbackData
	preview  *components.PreviewData
	anim     *components.AnimationData

	// movement is the displacement dodge and attack contribute this frame.
	movement gamemath.Vec2
	// allowLocomotion is cleared by any system that takes over movement.
	allowLocomotion bool
	dodgeTriggered  bool
}

func newFrame(w donburi.World, e *donburi.Entry, dt float64) *frame {
	char := components.Character.Get(e)
	behavior := char.Behavior
	if behavior == nil {
		behavior = baseBehavior{}
	}
	return &frame{
		world:           w,
		entry:           e,
		dt:              dt,
		cfg:             char.Config,
		char:            char,
		behavior:        behavior,
		obj:             components.Object.Get(e),
		input:           components.Input.Get(e),
		combat:          components.Combat.Get(e),
		dodge:           components.Dodge.Get(e),
		loco:            components.Locomotion.Get(e),
		health:          components.Health.Get(e),
		knock:           components.Knockback.Get(e),
		preview:         components.Preview.Get(e),
		anim:            components.Animation.Get(e),
		allowLocomotion: true,
	}
}

// UpdateCharacters runs one tick for every living character.
func UpdateCharacters(w donburi.World, integrator MotionIntegrator, dt float64) {
	components.Character.Each(w, func(e *donburi.Entry) {
		TickCharacter(w, e, integrator, dt)
	})
}

// TickCharacter advances a single character by dt: aim, grounding, dodge, attack,
// locomotion, integration, then the health check.
func TickCharacter(w donburi.World, e *donburi.Entry, integrator MotionIntegrator, dt float64) {
	f := newFrame(w, e, dt)
	if f.health.Dead {
		return
	}
	if f.health.Current <= 0 {
		kill(f)
		return
	}

	updateAim(f)
	updateGrounding(f, integrator)
	updateDodge(f)
	updateAttack(f)
	updateLocomotion(f)
	integrate(f, integrator)

	if f.health.Current <= 0 || f.loco.Height < f.cfg.Fall.KillHeight {
		kill(f)
	}
	writeAnimation(f)
}

func integrate(f *frame, integrator MotionIntegrator) {
	displacement := f.movement.Add(f.knock.Velocity.MulScalar(f.dt))
	moved := integrator.Move(f.entry, displacement, f.loco.VerticalVelocity*f.dt)

	if f.dt > 0 {
		f.loco.Velocity = moved.MulScalar(1 / f.dt)
	}
	if f.loco.Grounded {
		f.loco.StrideDistance += moved.Magnitude()
	}
}

func kill(f *frame) {
	if f.combat.IsAttacking {
		endAttack(f)
	}
	cancelPreview(f.entry)
	f.health.Dead = true
	f.loco.Velocity = gamemath.Vec2{}
	DiedEvent.Publish(f.world, Died{Entry: f.entry, Faction: f.char.Faction})
	PlaySFX(f.world, config.SoundDeath, f.obj.Center())
}

func writeAnimation(f *frame) {
	f.anim.Floats[config.AnimSpeed] = f.loco.AnimationBlend
	f.anim.Floats[config.AnimMotionSpeed] = f.loco.MotionSpeed
	f.anim.Floats[config.AnimDodgeDirection] = f.dodge.Sign
	f.anim.Bools[config.AnimGrounded] = f.loco.Grounded
	f.anim.Bools[config.AnimFreeFall] = f.loco.FreeFall
	f.anim.Bools[config.AnimDodge] = f.dodgeTriggered
}
