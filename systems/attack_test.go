package systems

import (
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
)

func TestAttackLifecycle(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(15, 25)
	selectSlot(p, int(config.KindGauntlets))

	input := components.Input.Get(p)
	combat := components.Combat.Get(p)
	preview := components.Preview.Get(p)
	def := tw.tuning.Player.Attacks[config.KindGauntlets]
	const dt = 0.05

	input.Attack = true
	tw.tick(p, dt)
	if !combat.IsPreviewing || combat.IsAttacking {
		t.Fatalf("after press: previewing=%v attacking=%v", combat.IsPreviewing, combat.IsAttacking)
	}
	if !preview.Visible || preview.Shape != components.PreviewCircle || preview.Fill != 1 {
		t.Fatalf("preview not shown as a full circle: %+v", preview)
	}
	if want := gamemath.V(15, 26); !nearVec(preview.Position, want, 1e-9) {
		t.Errorf("preview position = %+v, want %+v", preview.Position, want)
	}

	input.Attack = false
	tw.tick(p, dt)
	if !combat.IsAttacking {
		t.Fatalf("release did not activate")
	}
	if got := combat.Slots[config.KindGauntlets].TimeBuffer; got != 0 {
		t.Fatalf("time buffer after activation = %v, want 0", got)
	}
	if !combat.WeaponActive {
		t.Errorf("weapon collider not enabled")
	}

	ticks := 0
	for combat.IsAttacking && ticks < 20 {
		tw.tick(p, dt)
		ticks++
	}
	if combat.IsAttacking {
		t.Fatalf("attack never ended")
	}
	if ticks < 6 || ticks > 8 {
		t.Errorf("attack lasted %d ticks, want about %v", ticks, def.Duration/dt)
	}
	if combat.WeaponActive || combat.IsPreviewing || preview.Visible || len(combat.AttackedTargets) != 0 {
		t.Errorf("activation not torn down: weapon=%v previewing=%v visible=%v targets=%d",
			combat.WeaponActive, combat.IsPreviewing, preview.Visible, len(combat.AttackedTargets))
	}

	total := def.TotalTime()
	for i := 0; i < 40; i++ {
		tw.tick(p, dt)
		for j, slot := range combat.Slots {
			limit := tw.tuning.Player.Attacks[j].TotalTime()
			if slot.TimeBuffer < 0 || slot.TimeBuffer > limit {
				t.Fatalf("slot %d time buffer %v outside [0, %v]", j, slot.TimeBuffer, limit)
			}
		}
	}
	if got := combat.Slots[config.KindGauntlets].TimeBuffer; got != total {
		t.Errorf("time buffer settled at %v, want %v", got, total)
	}
}

func TestAttackWithoutSelectionIsNoop(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(15, 25)
	combat := components.Combat.Get(p)
	components.Input.Get(p).Attack = true

	for i := 0; i < 5; i++ {
		tw.tick(p, 0.05)
	}
	if combat.IsPreviewing || combat.IsAttacking {
		t.Fatalf("attack ran with index -1")
	}
	for i, slot := range combat.Slots {
		if want := tw.tuning.Player.Attacks[i].TotalTime(); slot.TimeBuffer != want {
			t.Errorf("slot %d time buffer = %v, want %v", i, slot.TimeBuffer, want)
		}
	}
}

func TestAttackNotReadyDoesNotPreview(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(15, 25)
	selectSlot(p, int(config.KindGauntlets))
	combat := components.Combat.Get(p)
	combat.Slots[config.KindGauntlets].TimeBuffer = 0.5

	components.Input.Get(p).Attack = true
	tw.tick(p, 0.05)
	if combat.IsPreviewing {
		t.Fatalf("previewing while on cooldown")
	}
}

func TestLungeMovesAndSuppressesCollision(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(10, 25)
	selectSlot(p, int(config.KindSpear))

	input := components.Input.Get(p)
	combat := components.Combat.Get(p)
	obj := components.Object.Get(p)
	def := tw.tuning.Player.Attacks[config.KindSpear]
	const dt = 0.05

	input.Aim = gamemath.V(1, 0)
	input.Attack = true
	tw.tick(p, dt)
	if combat.IsAttacking {
		t.Fatalf("attack activated while held")
	}
	preview := components.Preview.Get(p)
	if preview.Shape != components.PreviewBox || !preview.Arrow {
		t.Errorf("spear preview = %v arrow=%v, want box with arrow", preview.Shape, preview.Arrow)
	}

	start := obj.Center()
	input.Attack = false
	tw.tick(p, dt)
	if !combat.IsAttacking || !combat.CollisionSuppressed {
		t.Fatalf("lunge not active: attacking=%v suppressed=%v", combat.IsAttacking, combat.CollisionSuppressed)
	}
	for i := 0; i < 20 && combat.IsAttacking; i++ {
		tw.tick(p, dt)
	}
	if combat.CollisionSuppressed {
		t.Errorf("collision suppression outlived the attack")
	}

	moved := obj.Center().Sub(start)
	if !near(moved.X, def.Movement.Z, 0.5) || !near(moved.Y, 0, 1e-6) {
		t.Errorf("lunge moved %+v, want about (%v, 0)", moved, def.Movement.Z)
	}
}

func TestSelectAttack(t *testing.T) {
	attacks := config.DefaultAttacks()
	all := []components.AttackSlot{{Unlocked: true}, {Unlocked: true}, {Unlocked: true}, {Unlocked: true}}
	onlyScythe := []components.AttackSlot{{}, {}, {Unlocked: true}, {}}
	onlySpear := []components.AttackSlot{{}, {Unlocked: true}, {}, {}}

	cases := []struct {
		name  string
		slots []components.AttackSlot
		aim   gamemath.Vec2
		want  int
	}{
		{"up picks gauntlets", all, gamemath.V(0, 1), 0},
		{"right picks spear", all, gamemath.V(1, 0), 1},
		{"down picks scythe", all, gamemath.V(0, -1), 2},
		{"left picks rifle", all, gamemath.V(-1, 0), 3},
		{"diagonal tie", all, gamemath.Normalize(gamemath.V(1, 1)), -1},
		{"only opposite unlocked", onlyScythe, gamemath.V(0, 1), -1},
		{"weak positive match", onlySpear, gamemath.Normalize(gamemath.V(0.2, 0.98)), 1},
		{"nothing unlocked", make([]components.AttackSlot, 4), gamemath.V(0, 1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectAttack(attacks, tc.slots, tc.aim); got != tc.want {
				t.Errorf("SelectAttack(%+v) = %d, want %d", tc.aim, got, tc.want)
			}
		})
	}
}

func TestMaskChangeSelectsByAim(t *testing.T) {
	tw := newTestWorldWith(t, func(c *config.Tuning) {
		c.Player.UnlockedAttacks = []int{0, 1, 2, 3}
	})
	p := tw.player(15, 25)
	input := components.Input.Get(p)
	combat := components.Combat.Get(p)

	input.ChangeMask = true
	input.Aim = gamemath.V(1, 0)
	tw.tick(p, 0.02)

	if combat.AttackIndex != int(config.KindSpear) {
		t.Errorf("AttackIndex = %d, want spear", combat.AttackIndex)
	}
	if input.ChangeMask {
		t.Errorf("mask change press not consumed")
	}

	// A press without aim keeps the selection.
	input.ChangeMask = true
	input.Aim = gamemath.Vec2{}
	tw.tick(p, 0.02)
	if combat.AttackIndex != int(config.KindSpear) {
		t.Errorf("AttackIndex = %d after aimless press, want spear", combat.AttackIndex)
	}
}

func TestMaskChangeRestartsPreview(t *testing.T) {
	tw := newTestWorldWith(t, func(c *config.Tuning) {
		c.Player.UnlockedAttacks = []int{0, 1, 2, 3}
		c.Player.StartingAttack = 0
	})
	p := tw.player(15, 25)
	input := components.Input.Get(p)
	combat := components.Combat.Get(p)
	const dt = 0.05

	input.Attack = true
	tw.tick(p, dt)
	tw.tick(p, dt)
	if !near(combat.PreviewHeld, 2*dt, 1e-9) {
		t.Fatalf("PreviewHeld = %v, want %v", combat.PreviewHeld, 2*dt)
	}

	input.ChangeMask = true
	input.Aim = gamemath.V(1, 0)
	tw.tick(p, dt)

	if combat.AttackIndex != int(config.KindSpear) {
		t.Fatalf("AttackIndex = %d, want spear", combat.AttackIndex)
	}
	if !near(combat.PreviewHeld, dt, 1e-9) {
		t.Errorf("PreviewHeld = %v, want a fresh %v", combat.PreviewHeld, dt)
	}
	if components.Preview.Get(p).Shape != components.PreviewBox {
		t.Errorf("preview did not switch to the spear's box")
	}
}

func TestPlayerAimFreezesAfterLongHold(t *testing.T) {
	tw := newTestWorldWith(t, func(c *config.Tuning) {
		c.Player.StartingAttack = 0
	})
	p := tw.player(15, 25)
	input := components.Input.Get(p)
	combat := components.Combat.Get(p)

	input.Attack = true
	input.Aim = gamemath.V(1, 0)
	for i := 0; i < 5; i++ {
		tw.tick(p, 0.1)
	}
	if !nearVec(combat.AimDirection, gamemath.V(1, 0), 1e-9) {
		t.Fatalf("AimDirection = %+v, want (1, 0)", combat.AimDirection)
	}

	input.Aim = gamemath.V(-1, 0)
	tw.tick(p, 0.1)
	if !nearVec(combat.AimDirection, gamemath.V(1, 0), 1e-9) {
		t.Errorf("aim moved after holding past the attack duration: %+v", combat.AimDirection)
	}
	if !nearVec(combat.AimInput, gamemath.V(-1, 0), 1e-9) {
		t.Errorf("AimInput = %+v, want raw input kept", combat.AimInput)
	}
}

func TestShortenedAttackClampsTimer(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(15, 25)
	combat := components.Combat.Get(p)
	attacks := components.Character.Get(p).Config.Attacks

	attacks[0].Duration = 0.1
	attacks[0].Cooldown = 0.1
	tw.tick(p, 0.02)

	for i, slot := range combat.Slots {
		if total := attacks[i].TotalTime(); slot.TimeBuffer < 0 || slot.TimeBuffer > total {
			t.Errorf("slot %d buffer = %v, want within [0, %v]", i, slot.TimeBuffer, total)
		}
	}
	if got := combat.Slots[0].TimeBuffer; !near(got, 0.2, 1e-9) {
		t.Errorf("shortened slot buffer = %v, want 0.2", got)
	}
}
