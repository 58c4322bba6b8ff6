package systems

import (
	"log"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AudioPlayer plays a clip once at a world position.
type AudioPlayer interface {
	PlayClipAt(clip string, pos gamemath.Vec2, volume float64)
}

// LogAudio stands in for a real mixer in headless runs.
type LogAudio struct {
	Verbose bool
}

func (a LogAudio) PlayClipAt(clip string, pos gamemath.Vec2, volume float64) {
	if a.Verbose {
		log.Printf("audio: %s at (%.2f, %.2f) vol %.2f", clip, pos.X, pos.Y, volume)
	}
}

func audioQueue(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a one-shot sound effect at pos.
func PlaySFX(w donburi.World, id config.SoundID, pos gamemath.Vec2) {
	queue := audioQueue(w)
	if queue == nil {
		return
	}
	clip, ok := config.Audio.SFXClips[id]
	if !ok {
		return
	}
	queue.Pending = append(queue.Pending, components.SoundRequest{
		ID:       id,
		Clip:     clip,
		Position: pos,
		Volume:   queue.SFXVolume * config.Audio.VolumeMultipliers[id],
	})
}

// OnFootstep plays a random footstep clip when the walk animation's weight is high enough.
func OnFootstep(w donburi.World, e *donburi.Entry, weight float64) {
	if weight <= config.FootstepWeightThreshold {
		return
	}
	queue := audioQueue(w)
	steps := components.Character.Get(e).Config.Footsteps
	if queue == nil || len(steps.Clips) == 0 {
		return
	}

	clip := steps.Clips[0]
	if queue.Rand != nil {
		clip = steps.Clips[queue.Rand.Intn(len(steps.Clips))]
	}
	queue.Pending = append(queue.Pending, components.SoundRequest{
		ID:       config.SoundFootstep,
		Clip:     clip,
		Position: components.Object.Get(e).Center(),
		Volume:   steps.Volume * queue.SFXVolume * config.Audio.VolumeMultipliers[config.SoundFootstep],
	})
}

func OnLand(w donburi.World, e *donburi.Entry, weight float64) {
	if weight <= config.FootstepWeightThreshold {
		return
	}
	queue := audioQueue(w)
	steps := components.Character.Get(e).Config.Footsteps
	if queue == nil || steps.LandingClip == "" {
		return
	}
	queue.Pending = append(queue.Pending, components.SoundRequest{
		ID:       config.SoundLand,
		Clip:     steps.LandingClip,
		Position: components.Object.Get(e).Center(),
		Volume:   steps.Volume * queue.SFXVolume * config.Audio.VolumeMultipliers[config.SoundLand],
	})
}

// UpdateFootsteps fires a footstep per stride of grounded travel and a landing on touchdown.
// The walk blend stands in for the animation clip weight.
func UpdateFootsteps(w donburi.World) {
	components.Character.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Dead {
			return
		}
		loco := components.Locomotion.Get(e)
		mv := components.Character.Get(e).Config.Movement

		if loco.JustLanded {
			OnLand(w, e, 1)
		}
		if !loco.Grounded || mv.StrideLength <= 0 || loco.StrideDistance < mv.StrideLength {
			return
		}
		loco.StrideDistance -= mv.StrideLength

		weight := 0.0
		if mv.MoveSpeed > 0 {
			weight = gamemath.Clamp01(loco.AnimationBlend / mv.MoveSpeed)
		}
		OnFootstep(w, e, weight)
	})
}

// UpdateAudio hands every queued sound to player and empties the queue.
func UpdateAudio(w donburi.World, player AudioPlayer) {
	queue := audioQueue(w)
	if queue == nil {
		return
	}
	if player != nil {
		for _, s := range queue.Pending {
			player.PlayClipAt(s.Clip, s.Position, s.Volume)
		}
	}
	queue.Pending = queue.Pending[:0]
}
