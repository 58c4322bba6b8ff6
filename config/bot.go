package config

// BrainDifficultyConfig holds tuning values for enemy behavior at a specific difficulty
type BrainDifficultyConfig struct {
	ReactionTime          float64 `yaml:"reaction_time"`           // Seconds between cooldown ending and the windup starting
	AttackPreviewDuration float64 `yaml:"attack_preview_duration"` // Seconds the attack button is held before release
	RetreatHealthFraction float64 `yaml:"retreat_health_fraction"` // Health fraction to start retreating (0 = never)
}

// BrainConfig holds all enemy AI configuration
type BrainConfig struct {
	Difficulty   string                           `yaml:"difficulty"`
	Difficulties map[string]BrainDifficultyConfig `yaml:"difficulties"`

	// Weapon is the enemy's fixed attack slot.
	Weapon int `yaml:"weapon"`

	// AlignDot is the minimum dot between facing and target direction before an
	// approaching enemy re-aims.
	AlignDot float64 `yaml:"align_dot"`
}

// Brain holds enemy AI configuration
var Brain BrainConfig

func init() {
	Brain = BrainConfig{
		Difficulty: "normal",
		Difficulties: map[string]BrainDifficultyConfig{
			"easy": {
				ReactionTime:          0.5,
				AttackPreviewDuration: 0.45,
				RetreatHealthFraction: 0,
			},
			"normal": {
				ReactionTime:          0.3,
				AttackPreviewDuration: 0.3,
				RetreatHealthFraction: 0,
			},
			"hard": {
				ReactionTime:          0.1,
				AttackPreviewDuration: 0.2,
				RetreatHealthFraction: 0.25, // Back off at 25% health
			},
		},
		Weapon:   int(KindGauntlets),
		AlignDot: 0.95,
	}
}

// Current returns the active difficulty, falling back to "normal".
func (b BrainConfig) Current() BrainDifficultyConfig {
	if d, ok := b.Difficulties[b.Difficulty]; ok {
		return d
	}
	return b.Difficulties["normal"]
}

func (b BrainConfig) clone() BrainConfig {
	out := b
	out.Difficulties = make(map[string]BrainDifficultyConfig, len(b.Difficulties))
	for k, v := range b.Difficulties {
		out.Difficulties[k] = v
	}
	return out
}
