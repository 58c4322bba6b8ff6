package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFootstep
	SoundLand
	SoundAttack
	SoundHit
	SoundDeath
)

// FootstepWeightThreshold is the minimum animation clip weight that lets a footstep or landing play.
const FootstepWeightThreshold = 0.5

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	DefaultSFXVol     float64
	SFXClips          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		DefaultSFXVol: 1.0,
		SFXClips: map[SoundID]string{
			SoundAttack: "swing",
			SoundHit:    "hit",
			SoundDeath:  "death",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFootstep: 1.0,
			SoundLand:     1.0,
			SoundAttack:   0.8,
			SoundHit:      1.0,
			SoundDeath:    0.9,
		},
	}
}
