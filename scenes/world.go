package scenes

import (
	"log"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/systems"
	"github.com/automoto/maskfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// maxFixedSteps bounds how many knockback steps one Advance may run.
const maxFixedSteps = 8

type system func(w *World, dt float64)

// Options customises the collaborators a World talks to.
type Options struct {
	// Audio receives sound effects. Nil plays nothing.
	Audio systems.AudioPlayer
	// NewAnimator is called once per spawned character. Nil records parameters.
	NewAnimator func() components.Animator
	// NoEnemies leaves the arena's enemy spawns empty.
	NoEnemies bool
}

// World is one arena simulation. Nothing runs on its own: the owner calls Tick, FixedUpdate
// or Advance.
type World struct {
	donburi.World

	Tuning         *config.Tuning
	Integrator     systems.MotionIntegrator
	Hits           *systems.HitResolver
	Audio          systems.AudioPlayer
	Render         *RenderParams
	Player         *donburi.Entry
	PlayerBehavior *systems.PlayerBehavior

	Time       float64
	Ticks      uint64
	FixedSteps uint64

	opts        Options
	accumulator float64
	systems     []system
}

// NewWorld validates the tuning and builds the arena, the player and the enemies.
func NewWorld(t *config.Tuning, opts Options) (*World, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	space := factory.CreateArena(w, t.Arena, t.Sim.Seed)

	sw := &World{
		World:  w,
		Tuning: t,
		Integrator: &systems.SpaceIntegrator{
			Space:           components.Space.Get(space),
			GroundThickness: t.Arena.GroundThickness,
		},
		Hits:           &systems.HitResolver{Knockback: t.Knockback},
		Audio:          opts.Audio,
		Render:         &RenderParams{},
		PlayerBehavior: &systems.PlayerBehavior{CameraYaw: t.CameraYaw},
		opts:           opts,
	}

	spawn := gamemath.V(t.Arena.PlayerSpawn.X, t.Arena.PlayerSpawn.Y)
	sw.Player = factory.CreatePlayer(w, t, spawn, sw.PlayerBehavior, sw.newAnimator())
	if !opts.NoEnemies {
		for _, s := range t.Arena.EnemySpawns {
			sw.SpawnEnemy(gamemath.V(s.X, s.Y))
		}
	}

	systems.OverlapEvent.Subscribe(w, sw.Hits.OnOverlap)
	sw.configure()
	return sw, nil
}

func (w *World) configure() {
	w.addSystem(func(w *World, dt float64) { systems.UpdateBrains(w.World, dt) })
	w.addSystem(func(w *World, _ float64) { systems.UpdatePedestals(w.World) })
	w.addSystem(func(w *World, dt float64) { systems.UpdateCharacters(w.World, w.Integrator, dt) })
	w.addSystem(func(w *World, _ float64) { systems.UpdateWeaponOverlaps(w.World) })
	w.addSystem(func(w *World, _ float64) { systems.UpdateDeaths(w.World) })
	w.addSystem(func(w *World, _ float64) { systems.UpdateFootsteps(w.World) })
	w.addSystem(func(w *World, _ float64) { systems.UpdateAudio(w.World, w.Audio) })
	w.addSystem(func(w *World, _ float64) { systems.UpdateAnimation(w.World) })
	w.addSystem(func(w *World, _ float64) { CollectRenderParams(w.World, w.Render) })
	w.addSystem(func(w *World, _ float64) { events.ProcessAllEvents(w.World) })
}

func (w *World) addSystem(s system) {
	w.systems = append(w.systems, s)
}

func (w *World) newAnimator() components.Animator {
	if w.opts.NewAnimator != nil {
		return w.opts.NewAnimator()
	}
	return components.NewParamRecorder()
}

// SpawnEnemy adds an enemy at pos using the current brain settings.
func (w *World) SpawnEnemy(pos gamemath.Vec2) *donburi.Entry {
	return factory.CreateEnemy(w.World, w.Tuning, pos, &systems.EnemyBehavior{}, w.newAnimator())
}

// Tick runs one variable-rate frame.
func (w *World) Tick(dt float64) {
	for _, s := range w.systems {
		s(w, dt)
	}
	w.Time += dt
	w.Ticks++
}

// FixedUpdate runs one fixed-rate physics step.
func (w *World) FixedUpdate() {
	systems.UpdateKnockback(w.World, w.Tuning.Knockback.Decay)
	w.FixedSteps++
}

// Advance runs every fixed step dt has made due, then one frame.
func (w *World) Advance(dt float64) {
	w.accumulator += dt
	step := w.Tuning.Sim.FixedStep
	for n := 0; w.accumulator >= step && n < maxFixedSteps; n++ {
		w.FixedUpdate()
		w.accumulator -= step
	}
	if w.accumulator >= step {
		// Drop the backlog after a stall
		w.accumulator = 0
	}
	w.Tick(dt)
}

// Retune swaps in new tuning values for the running world. Character configs are updated
// in place. Arena geometry is only read at creation.
func (w *World) Retune(t *config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}

	w.Tuning.Player = t.Player
	w.Tuning.Enemy = t.Enemy
	w.Tuning.Brain = t.Brain
	w.Tuning.Knockback = t.Knockback
	w.Tuning.Sim = t.Sim
	w.Tuning.CameraYaw = t.CameraYaw

	w.Hits.Knockback = t.Knockback
	w.PlayerBehavior.CameraYaw = t.CameraYaw
	difficulty := t.Brain.Current()
	components.Brain.Each(w.World, func(e *donburi.Entry) {
		brain := components.Brain.Get(e)
		brain.Difficulty = difficulty
		brain.AlignDot = t.Brain.AlignDot
	})

	log.Printf("Tuning applied (difficulty %s)", t.Brain.Difficulty)
	return nil
}

// PlayerDead reports whether the player has died.
func (w *World) PlayerDead() bool {
	return w.Player == nil || !w.Player.Valid() || components.Health.Get(w.Player).Dead
}

// EnemiesAlive counts enemies still in the arena.
func (w *World) EnemiesAlive() int {
	n := 0
	components.Brain.Each(w.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).Dead {
			n++
		}
	})
	return n
}
