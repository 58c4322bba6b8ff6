package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/systems"
	"github.com/yohamta/donburi"
)

func TestNewWorldRejectsBadTuning(t *testing.T) {
	tuning := config.Default()
	tuning.Player.Dodge.Timeout = 0.1

	if _, err := NewWorld(tuning, Options{}); !errors.Is(err, config.ErrDodgeTiming) {
		t.Fatalf("NewWorld error = %v, want ErrDodgeTiming", err)
	}
}

func TestNewWorldSpawns(t *testing.T) {
	tuning := config.Default()
	w, err := NewWorld(tuning, Options{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if w.PlayerDead() {
		t.Errorf("player starts dead")
	}
	if got, want := w.EnemiesAlive(), len(tuning.Arena.EnemySpawns); got != want {
		t.Errorf("EnemiesAlive = %d, want %d", got, want)
	}

	w.Tick(1.0 / 60)
	if got := len(w.Render.Bodies); got != 1+len(tuning.Arena.EnemySpawns) {
		t.Errorf("render bodies = %d", got)
	}
	if len(w.Render.Ground) != len(tuning.Arena.Ground) || len(w.Render.Walls) != len(tuning.Arena.Walls) {
		t.Errorf("render regions = %d ground, %d walls", len(w.Render.Ground), len(w.Render.Walls))
	}
	if len(w.Render.Pedestals) != len(tuning.Arena.Pedestals) {
		t.Errorf("render pedestals = %d", len(w.Render.Pedestals))
	}
}

func TestAdvanceRunsFixedSteps(t *testing.T) {
	w, err := NewWorld(config.Default(), Options{NoEnemies: true})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	for i := 0; i < 60; i++ {
		w.Advance(1.0 / 60)
	}

	if w.Ticks != 60 {
		t.Errorf("Ticks = %d, want 60", w.Ticks)
	}
	// One second at a 0.02s step.
	if w.FixedSteps < 49 || w.FixedSteps > 50 {
		t.Errorf("FixedSteps = %d, want about 50", w.FixedSteps)
	}
}

func TestPlayerAttackLandsOnEnemy(t *testing.T) {
	w, err := NewWorld(config.Default(), Options{NoEnemies: true})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	spawn := w.Tuning.Arena.PlayerSpawn
	enemy := w.SpawnEnemy(gamemath.V(spawn.X+1.2, spawn.Y))

	hits := 0
	systems.HitLandedEvent.Subscribe(w.World, func(_ donburi.World, h systems.HitLanded) {
		if h.Target.Entity() == enemy.Entity() {
			hits++
		}
	})

	components.Combat.Get(w.Player).AttackIndex = int(config.KindGauntlets)
	input := components.Input.Get(w.Player)
	input.Aim = gamemath.V(1, 0)
	const dt = 1.0 / 60

	input.Attack = true
	w.Tick(dt)
	if len(w.Render.Indicators) == 0 {
		t.Fatalf("no preview indicator while holding attack")
	}

	input.Attack = false
	for i := 0; i < 10; i++ {
		w.Tick(dt)
	}

	if hits != 1 {
		t.Errorf("HitLanded for the enemy %d times, want 1", hits)
	}
	health := components.Health.Get(enemy)
	if want := health.Max - w.Tuning.Player.Attacks[config.KindGauntlets].Damage; health.Current != want {
		t.Errorf("enemy health = %v, want %v", health.Current, want)
	}
}

func TestKilledEnemyIsRemoved(t *testing.T) {
	w, err := NewWorld(config.Default(), Options{NoEnemies: true})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	spawn := w.Tuning.Arena.PlayerSpawn
	enemy := w.SpawnEnemy(gamemath.V(spawn.X+5, spawn.Y))
	components.Health.Get(enemy).Current = 0

	w.Tick(1.0 / 60)

	if enemy.Valid() {
		t.Errorf("dead enemy still in the world")
	}
	if w.EnemiesAlive() != 0 {
		t.Errorf("EnemiesAlive = %d, want 0", w.EnemiesAlive())
	}
}

func TestRetune(t *testing.T) {
	w, err := NewWorld(config.Default(), Options{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	next := config.Default()
	next.Brain.Difficulty = "hard"
	next.Player.Movement.MoveSpeed = 8
	next.CameraYaw = 0.5
	if err := w.Retune(next); err != nil {
		t.Fatalf("Retune: %v", err)
	}

	if got := components.Character.Get(w.Player).Config.Movement.MoveSpeed; got != 8 {
		t.Errorf("player move speed = %v, want 8", got)
	}
	if w.PlayerBehavior.CameraYaw != 0.5 {
		t.Errorf("camera yaw not applied")
	}
	want := next.Brain.Difficulties["hard"]
	components.Brain.Each(w.World, func(e *donburi.Entry) {
		if got := components.Brain.Get(e).Difficulty; got != want {
			t.Errorf("brain difficulty = %+v, want %+v", got, want)
		}
	})

	bad := config.Default()
	bad.Player.Attacks = nil
	if err := w.Retune(bad); !errors.Is(err, config.ErrEmptyCatalog) {
		t.Errorf("Retune error = %v, want ErrEmptyCatalog", err)
	}
}

func TestStateReportsCharacters(t *testing.T) {
	w, err := NewWorld(config.Default(), Options{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Tick(1.0 / 60)

	s := w.State()
	if s.Ticks != 1 || len(s.Characters) != 3 {
		t.Fatalf("state = %+v", s)
	}
	players := 0
	for _, c := range s.Characters {
		if c.Faction == "player" {
			players++
		}
	}
	if players != 1 {
		t.Errorf("%d players in state, want 1", players)
	}
}
