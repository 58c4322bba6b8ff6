package components

import (
	"github.com/automoto/maskfall/config"
	"github.com/yohamta/donburi"
)

// BrainData is the enemy decision state.
type BrainData struct {
	Weapon           int
	AttackTimeBuffer float64
	Difficulty       config.BrainDifficultyConfig
	AlignDot         float64

	Target *donburi.Entry
}

var Brain = donburi.NewComponentType[BrainData]()
