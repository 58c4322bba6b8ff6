package systems

import (
	"math"
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/systems/factory"
	"github.com/yohamta/donburi"
)

type testWorld struct {
	w      donburi.World
	tuning *config.Tuning
	integ  *SpaceIntegrator
	hits   *HitResolver
}

// newTestWorld builds the default arena without its pedestals.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return newTestWorldWith(t, func(*config.Tuning) {})
}

func newTestWorldWith(t *testing.T, tune func(*config.Tuning)) *testWorld {
	t.Helper()

	tuning := config.Default()
	tuning.Arena.Pedestals = nil
	tune(tuning)
	if err := tuning.Validate(); err != nil {
		t.Fatalf("tuning invalid: %v", err)
	}

	w := donburi.NewWorld()
	space := factory.CreateArena(w, tuning.Arena, 1)

	tw := &testWorld{
		w:      w,
		tuning: tuning,
		integ: &SpaceIntegrator{
			Space:           components.Space.Get(space),
			GroundThickness: tuning.Arena.GroundThickness,
		},
		hits: &HitResolver{Knockback: tuning.Knockback},
	}
	OverlapEvent.Subscribe(w, tw.hits.OnOverlap)
	return tw
}

func (tw *testWorld) player(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(tw.w, tw.tuning, gamemath.V(x, y), &PlayerBehavior{}, components.NewParamRecorder())
}

func (tw *testWorld) enemy(x, y float64) *donburi.Entry {
	return factory.CreateEnemy(tw.w, tw.tuning, gamemath.V(x, y), &EnemyBehavior{}, components.NewParamRecorder())
}

func (tw *testWorld) tick(e *donburi.Entry, dt float64) {
	TickCharacter(tw.w, e, tw.integ, dt)
}

// selectSlot unlocks and selects an attack without going through input.
func selectSlot(e *donburi.Entry, index int) {
	combat := components.Combat.Get(e)
	combat.Slots[index].Unlocked = true
	combat.AttackIndex = index
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func nearVec(a, b gamemath.Vec2, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

type recordingAudio struct {
	clips []string
}

func (r *recordingAudio) PlayClipAt(clip string, _ gamemath.Vec2, _ float64) {
	r.clips = append(r.clips, clip)
}
