package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// baseBehavior treats input as already world-space and never gates attacks.
type baseBehavior struct{}

func (baseBehavior) AimDirection(_ *donburi.Entry, aim gamemath.Vec2) (gamemath.Vec2, bool) {
	return aim, true
}

func (baseBehavior) MoveHeading(move gamemath.Vec2) float64 {
	return gamemath.Heading(move)
}

func (baseBehavior) AfterAim(*donburi.Entry) {}

func (baseBehavior) GateAttack(*donburi.Entry) bool { return true }

// EnemyBehavior aims straight at whatever its brain writes into the aim input.
type EnemyBehavior struct {
	baseBehavior
}

// PlayerBehavior maps camera-relative input into the world and handles mask selection and pickup.
type PlayerBehavior struct {
	CameraYaw float64
}

func (b *PlayerBehavior) AimDirection(e *donburi.Entry, aim gamemath.Vec2) (gamemath.Vec2, bool) {
	combat := components.Combat.Get(e)
	if combat.IsPreviewing && combat.AttackIndex >= 0 {
		def := components.Character.Get(e).Config.Attacks[combat.AttackIndex]
		if combat.PreviewHeld > def.Duration {
			return gamemath.Vec2{}, false
		}
	}
	return gamemath.Forward(gamemath.Heading(aim) + b.CameraYaw), true
}

func (b *PlayerBehavior) MoveHeading(move gamemath.Vec2) float64 {
	return gamemath.Heading(move) + b.CameraYaw
}

// AfterAim switches masks on a change press.
func (b *PlayerBehavior) AfterAim(e *donburi.Entry) {
	input := components.Input.Get(e)
	if !input.ConsumeChangeMask() {
		return
	}

	combat := components.Combat.Get(e)
	if combat.IsAttacking || gamemath.LengthSq(combat.AimInput) <= config.InputEpsilon {
		return
	}

	cfg := components.Character.Get(e).Config
	if idx := SelectAttack(cfg.Attacks, combat.Slots, combat.AimInput); idx >= 0 {
		selectAttack(e, idx)
	}
}

// GateAttack turns an attack press next to a pedestal into a mask pickup. The attack
// button then stays dead until it is released.
func (b *PlayerBehavior) GateAttack(e *donburi.Entry) bool {
	player := components.Player.Get(e)
	input := components.Input.Get(e)

	if player.AwaitRelease {
		if input.Attack {
			return false
		}
		player.AwaitRelease = false
	}

	if player.Pedestal == nil || !player.Pedestal.Valid() || !input.Attack {
		return true
	}

	combat := components.Combat.Get(e)
	if combat.IsAttacking {
		return true
	}

	mask := components.Pedestal.Get(player.Pedestal).MaskIndex
	if mask < 0 || mask >= len(combat.Slots) {
		return true
	}
	if combat.Slots[mask].Unlocked && combat.AttackIndex == mask {
		return true
	}

	combat.Slots[mask].Unlocked = true
	selectAttack(e, mask)
	cancelPreview(e)
	player.AwaitRelease = true
	return false
}

// UpdatePedestals records, for every player, the first pedestal in reach.
func UpdatePedestals(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		pos := components.Object.Get(e).Center()
		player := components.Player.Get(e)
		player.Pedestal = nil

		components.Pedestal.Each(w, func(p *donburi.Entry) {
			if player.Pedestal != nil {
				return
			}
			ped := components.Pedestal.Get(p)
			if gamemath.DistanceSq(pos, ped.Position) <= ped.Radius*ped.Radius {
				player.Pedestal = p
			}
		})
	})
}
