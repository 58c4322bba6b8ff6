package factory

import (
	"math/rand"

	"github.com/automoto/maskfall/archetypes"
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/yohamta/donburi"
)

// CreateArena builds the space, floor, walls, pedestals and the audio queue.
func CreateArena(w donburi.World, arena config.ArenaConfig, seed int64) *donburi.Entry {
	space := CreateSpace(w, arena.Width, arena.Height, arena.CellSize, arena.CellSize)

	for _, r := range arena.Ground {
		CreateGround(w, r.X, r.Y, r.W, r.H)
	}
	for _, r := range arena.Walls {
		CreateWall(w, r.X, r.Y, r.W, r.H)
	}
	for _, p := range arena.Pedestals {
		CreatePedestal(w, p)
	}

	audio := archetypes.Audio.Spawn(w)
	components.Audio.SetValue(audio, components.AudioData{
		SFXVolume: config.Audio.DefaultSFXVol,
		Rand:      rand.New(rand.NewSource(seed)),
	})

	return space
}
