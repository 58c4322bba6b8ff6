package components

import (
	"math/rand"

	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SoundRequest is one fire-and-forget clip playback.
type SoundRequest struct {
	ID       config.SoundID
	Clip     string
	Position gamemath.Vec2
	Volume   float64
}

// AudioData queues sounds until the audio system flushes them (singleton component)
type AudioData struct {
	SFXVolume float64
	Pending   []SoundRequest
	Rand      *rand.Rand // Picks footstep clips
}

var Audio = donburi.NewComponentType[AudioData]()
