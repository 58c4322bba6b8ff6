package components

import "github.com/yohamta/donburi"

// Animator receives named animation parameters.
type Animator interface {
	SetFloat(name string, value float64)
	SetBool(name string, value bool)
}

// AnimationData is the parameter block the update loop writes each tick.
type AnimationData struct {
	Floats map[string]float64
	Bools  map[string]bool
	Sink   Animator
}

func NewAnimationData(sink Animator) AnimationData {
	return AnimationData{
		Floats: make(map[string]float64),
		Bools:  make(map[string]bool),
		Sink:   sink,
	}
}

var Animation = donburi.NewComponentType[AnimationData]()

// ParamRecorder is an Animator that keeps the last value of every parameter.
type ParamRecorder struct {
	Floats map[string]float64
	Bools  map[string]bool
}

func NewParamRecorder() *ParamRecorder {
	return &ParamRecorder{
		Floats: make(map[string]float64),
		Bools:  make(map[string]bool),
	}
}

func (r *ParamRecorder) SetFloat(name string, value float64) { r.Floats[name] = value }

func (r *ParamRecorder) SetBool(name string, value bool) { r.Bools[name] = value }
