package systems

import (
	"math"
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
)

func TestDodgeBurstActive(t *testing.T) {
	const dodgeTime, delay = 0.25, 0.1

	cases := []struct {
		name string
		sign float64
		t    float64
		want bool
	}{
		{"forward start", 1, 0, true},
		{"forward end", 1, 0.25, false},
		{"forward mid", 1, 0.2, true},
		{"backward waits", -1, 0.05, false},
		{"backward at delay", -1, 0.1, false},
		{"backward running", -1, 0.3, true},
		{"backward end", -1, 0.36, false},
		{"sideways never moves", 0, 0.1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dodgeBurstActive(tc.sign, tc.t, dodgeTime, delay); got != tc.want {
				t.Errorf("dodgeBurstActive(%v, %v) = %v, want %v", tc.sign, tc.t, got, tc.want)
			}
		})
	}
}

func TestDodgeCannotRetriggerEarly(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(10, 30)
	input := components.Input.Get(p)
	dodge := components.Dodge.Get(p)
	cfg := tw.tuning.Player.Dodge
	const dt = 0.05

	var triggers []int
	for i := 0; i < 40; i++ {
		input.Dodge = true
		tw.tick(p, dt)
		if dodge.TimeBuffer == 0 {
			triggers = append(triggers, i)
		}
	}

	if len(triggers) < 2 {
		t.Fatalf("dodge triggered %d times, want repeats", len(triggers))
	}
	if triggers[0] != 0 {
		t.Errorf("first dodge on tick %d, want 0", triggers[0])
	}
	minGap := int(math.Floor(cfg.Timeout/dt + 1e-9))
	for i := 1; i < len(triggers); i++ {
		if gap := triggers[i] - triggers[i-1]; gap < minGap {
			t.Errorf("dodge retriggered after %d ticks, want at least %d", gap, minGap)
		}
	}
}

func TestDodgeDistanceProfile(t *testing.T) {
	cases := []struct {
		name     string
		facing   float64
		wantSign float64
	}{
		// Default aim is +z, so the dodge heads -z.
		{"backward", 0, -1},
		{"forward", math.Pi, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			p := tw.player(10, 30)
			cfg := tw.tuning.Player.Dodge
			obj := components.Object.Get(p)
			components.Locomotion.Get(p).Facing = tc.facing
			const dt = 0.01

			components.Input.Get(p).Dodge = true
			prev := obj.Center().Y
			travelled, early := 0.0, 0.0
			for i := 0; i < 50; i++ {
				tw.tick(p, dt)
				step := prev - obj.Center().Y
				prev = obj.Center().Y
				travelled += step
				if float64(i)*dt < cfg.BackwardDelay-dt {
					early += math.Abs(step)
				}
			}

			dodge := components.Dodge.Get(p)
			if dodge.Sign != tc.wantSign {
				t.Fatalf("sign = %v, want %v", dodge.Sign, tc.wantSign)
			}
			if !near(travelled, cfg.Distance, 0.1) {
				t.Errorf("travelled %v, want about %v", travelled, cfg.Distance)
			}
			if tc.wantSign < 0 && early != 0 {
				t.Errorf("backward dodge moved %v before its delay", early)
			}
			if tc.wantSign > 0 && early == 0 {
				t.Errorf("forward dodge did not move straight away")
			}
		})
	}
}

func TestDodgeBlockedWhileAttacking(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(10, 30)
	components.Combat.Get(p).IsAttacking = true
	input := components.Input.Get(p)
	input.Dodge = true

	tw.tick(p, 0.02)

	if components.Dodge.Get(p).TimeBuffer == 0 {
		t.Fatalf("dodged mid-attack")
	}
	if !input.Dodge {
		t.Errorf("press consumed while dodge was unavailable")
	}
}

func TestDodgeSuppressesLocomotionForWholeTimeout(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.player(10, 30)
	input := components.Input.Get(p)
	loco := components.Locomotion.Get(p)

	input.Dodge = true
	input.Move = gamemath.V(1, 0)
	for i := 0; i < 45; i++ {
		tw.tick(p, 0.01)
		if loco.Speed != 0 {
			t.Fatalf("locomotion ran %v into the dodge", float64(i)*0.01)
		}
	}
}
