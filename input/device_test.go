package input

import (
	"math"
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/shared/gamemath"
)

type fakePoller struct {
	pressed   map[ActionID]bool
	move, aim [2]float64
	cursorX   float64
	cursorY   float64
}

func newFake() *fakePoller { return &fakePoller{pressed: map[ActionID]bool{}} }

func (f *fakePoller) Pressed(a ActionID) bool       { return f.pressed[a] }
func (f *fakePoller) MoveStick() (float64, float64) { return f.move[0], f.move[1] }
func (f *fakePoller) AimStick() (float64, float64)  { return f.aim[0], f.aim[1] }
func (f *fakePoller) Cursor() (float64, float64)    { return f.cursorX, f.cursorY }

func near(a, b gamemath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		keys       []ActionID
		stick      [2]float64
		want       gamemath.Vec2
		wantAnalog bool
	}{
		{"idle", nil, [2]float64{}, gamemath.V(0, 0), false},
		{"up key", []ActionID{ActionMoveUp}, [2]float64{}, gamemath.V(0, 1), false},
		{"diagonal keys normalized", []ActionID{ActionMoveRight, ActionMoveDown}, [2]float64{}, gamemath.V(math.Sqrt2/2, -math.Sqrt2/2), false},
		{"opposite keys cancel", []ActionID{ActionMoveLeft, ActionMoveRight}, [2]float64{}, gamemath.V(0, 0), false},
		{"stick flips y", nil, [2]float64{0, -0.5}, gamemath.V(0, 0.5), true},
		{"stick inside deadzone", []ActionID{ActionMoveLeft}, [2]float64{0.1, 0}, gamemath.V(-1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			for _, k := range tt.keys {
				f.pressed[k] = true
			}
			f.move = tt.stick
			d := NewDevice(f, 0.25)
			var in components.InputData

			d.Update(&in, gamemath.Vec2{})

			if !near(in.Move, tt.want) || in.AnalogMovement != tt.wantAnalog {
				t.Errorf("move = %v analog=%v, want %v analog=%v", in.Move, in.AnalogMovement, tt.want, tt.wantAnalog)
			}
		})
	}
}

func TestPressesLatch(t *testing.T) {
	f := newFake()
	d := NewDevice(f, 0.25)
	var in components.InputData

	f.pressed[ActionDodge] = true
	d.Update(&in, gamemath.Vec2{})
	if !in.Dodge {
		t.Fatalf("dodge press not latched")
	}

	// Still held: a consumed press does not retrigger.
	in.ConsumeDodge()
	d.Update(&in, gamemath.Vec2{})
	if in.Dodge {
		t.Errorf("held dodge latched again")
	}

	f.pressed[ActionDodge] = false
	f.pressed[ActionChangeMask] = true
	d.Update(&in, gamemath.Vec2{})
	if !in.ChangeMask {
		t.Errorf("mask change press not latched")
	}
}

func TestAttackIsHeldState(t *testing.T) {
	f := newFake()
	d := NewDevice(f, 0.25)
	var in components.InputData

	f.pressed[ActionAttack] = true
	d.Update(&in, gamemath.Vec2{})
	d.Update(&in, gamemath.Vec2{})
	if !in.Attack {
		t.Errorf("held attack not reported")
	}
	f.pressed[ActionAttack] = false
	d.Update(&in, gamemath.Vec2{})
	if in.Attack {
		t.Errorf("released attack still reported")
	}
}

func TestAimDevices(t *testing.T) {
	f := newFake()
	d := NewDevice(f, 0.25)
	var in components.InputData
	origin := gamemath.V(100, 100)

	f.cursorX, f.cursorY = 100, 100
	d.Update(&in, origin)
	if in.Aim != (gamemath.Vec2{}) || in.Device != components.AimDirectional {
		t.Fatalf("idle aim = %v device %v", in.Aim, in.Device)
	}

	// Cursor up and to the right of the character.
	f.cursorX, f.cursorY = 130, 60
	d.Update(&in, origin)
	if in.Device != components.AimPointer || !near(in.Aim, gamemath.V(30, 40)) {
		t.Fatalf("pointer aim = %v device %v", in.Aim, in.Device)
	}

	// Pointer aim follows the character while the cursor rests.
	d.Update(&in, gamemath.V(130, 100))
	if !near(in.Aim, gamemath.V(0, 40)) {
		t.Errorf("resting pointer aim = %v, want (0, 40)", in.Aim)
	}

	f.aim = [2]float64{-0.9, 0}
	d.Update(&in, origin)
	if in.Device != components.AimDirectional || !near(in.Aim, gamemath.V(-0.9, 0)) {
		t.Errorf("stick aim = %v device %v", in.Aim, in.Device)
	}

	// Released stick with a still cursor leaves aim empty.
	f.aim = [2]float64{}
	d.Update(&in, origin)
	if in.Aim != (gamemath.Vec2{}) {
		t.Errorf("aim after stick release = %v, want zero", in.Aim)
	}

	f.pressed[ActionAimDown] = true
	d.Update(&in, origin)
	if !near(in.Aim, gamemath.V(0, -1)) {
		t.Errorf("key aim = %v, want (0, -1)", in.Aim)
	}
}
