package config

import "math"

// AttackSlotCount is the fixed number of attack slots every character carries.
const AttackSlotCount = 4

// InputEpsilon is the squared magnitude below which a stick or aim vector counts as idle.
const InputEpsilon = 1.1920929e-7

// Float2 is a planar pair. X is world x, Y is world z (forward).
type Float2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Float3 is a local-space vector. Z is forward.
type Float3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Rect is an axis-aligned region of the arena floor plan.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MovementConfig contains locomotion tuning
type MovementConfig struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	RotationSmoothTime float64 `yaml:"rotation_smooth_time"`
	SpeedChangeRate    float64 `yaml:"speed_change_rate"`
	SpeedOffset        float64 `yaml:"speed_offset"`  // Dead-band around the target speed
	BlendCutoff        float64 `yaml:"blend_cutoff"`  // Animation blend below this snaps to zero
	StrideLength       float64 `yaml:"stride_length"` // Grounded travel per footstep
}

// DodgeConfig contains dodge timing. Time+BackwardDelay must stay below Timeout.
type DodgeConfig struct {
	Distance      float64 `yaml:"distance"`
	Time          float64 `yaml:"time"`
	Timeout       float64 `yaml:"timeout"`
	BackwardDelay float64 `yaml:"backward_delay"`
}

// FallConfig contains gravity and ground probe settings
type FallConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	FallTimeout      float64 `yaml:"fall_timeout"`
	GroundedOffset   float64 `yaml:"grounded_offset"`
	GroundedRadius   float64 `yaml:"grounded_radius"`
	GroundedVelocity float64 `yaml:"grounded_velocity"` // Vertical velocity held while grounded
	KillHeight       float64 `yaml:"kill_height"`
}

// FootstepConfig names the clips played on footstep and landing events
type FootstepConfig struct {
	Clips       []string `yaml:"clips"`
	LandingClip string   `yaml:"landing_clip"`
	Volume      float64  `yaml:"volume"`
}

// CharacterConfig contains everything a character needs at spawn
type CharacterConfig struct {
	MaxHealth  float64 `yaml:"max_health"`
	BodyRadius float64 `yaml:"body_radius"`

	Movement  MovementConfig `yaml:"movement"`
	Dodge     DodgeConfig    `yaml:"dodge"`
	Fall      FallConfig     `yaml:"fall"`
	Footsteps FootstepConfig `yaml:"footsteps"`

	Attacks         []AttackDefinition `yaml:"attacks"`
	StartingAttack  int                `yaml:"starting_attack"` // -1 = nothing selected
	UnlockedAttacks []int              `yaml:"unlocked_attacks"`
}

// KnockbackConfig contains knockback scaling and fixed-step decay
type KnockbackConfig struct {
	Scale float64 `yaml:"scale"`
	Decay float64 `yaml:"decay"`
}

// PedestalConfig places a mask pedestal in the arena
type PedestalConfig struct {
	Position  Float2  `yaml:"position"`
	Radius    float64 `yaml:"radius"`
	MaskIndex int     `yaml:"mask_index"`
}

// ArenaConfig describes the floor plan the simulation runs on
type ArenaConfig struct {
	Width           int              `yaml:"width"`
	Height          int              `yaml:"height"`
	CellSize        int              `yaml:"cell_size"`
	GroundThickness float64          `yaml:"ground_thickness"`
	Ground          []Rect           `yaml:"ground"`
	Walls           []Rect           `yaml:"walls"`
	PlayerSpawn     Float2           `yaml:"player_spawn"`
	EnemySpawns     []Float2         `yaml:"enemy_spawns"`
	Pedestals       []PedestalConfig `yaml:"pedestals"`
}

// SimConfig contains clock settings
type SimConfig struct {
	TickRate  int     `yaml:"tick_rate"`
	FixedStep float64 `yaml:"fixed_step"`
	Seed      int64   `yaml:"seed"`
}

// Tuning bundles every value the simulation reads. Worlds take a *Tuning explicitly.
type Tuning struct {
	Player    CharacterConfig `yaml:"player"`
	Enemy     CharacterConfig `yaml:"enemy"`
	Brain     BrainConfig     `yaml:"brain"`
	Knockback KnockbackConfig `yaml:"knockback"`
	Arena     ArenaConfig     `yaml:"arena"`
	Sim       SimConfig       `yaml:"sim"`
	CameraYaw float64         `yaml:"camera_yaw"`
}

var (
	Player    CharacterConfig
	Enemy     CharacterConfig
	Knockback KnockbackConfig
	Arena     ArenaConfig
	Sim       SimConfig
)

func init() {
	Player = CharacterConfig{
		MaxHealth:  10,
		BodyRadius: 0.5,
		Movement: MovementConfig{
			MoveSpeed:          5.335,
			RotationSmoothTime: 0.12,
			SpeedChangeRate:    10,
			SpeedOffset:        0.1,
			BlendCutoff:        0.01,
			StrideLength:       1.6,
		},
		Dodge: DodgeConfig{
			Distance:      2,
			Time:          0.25,
			Timeout:       0.5,
			BackwardDelay: 0.1,
		},
		Fall: FallConfig{
			Gravity:          -15,
			TerminalVelocity: 53,
			FallTimeout:      0.15,
			GroundedOffset:   -0.14,
			GroundedRadius:   0.28,
			GroundedVelocity: -2,
			KillHeight:       -20,
		},
		Footsteps: FootstepConfig{
			Clips:       []string{"footstep_01", "footstep_02", "footstep_03", "footstep_04"},
			LandingClip: "land",
			Volume:      0.5,
		},
		Attacks:         DefaultAttacks(),
		StartingAttack:  -1,
		UnlockedAttacks: nil,
	}

	// Enemies share the player's body and timings but move a little slower
	Enemy = Player
	Enemy.MaxHealth = 4
	Enemy.Movement.MoveSpeed = 3.5
	Enemy.Footsteps.Clips = []string{"enemy_step_01", "enemy_step_02"}
	Enemy.Attacks = DefaultAttacks()

	Knockback = KnockbackConfig{
		Scale: 4,
		Decay: 0.75,
	}

	Arena = ArenaConfig{
		Width:           40,
		Height:          40,
		CellSize:        2,
		GroundThickness: 1,
		Ground: []Rect{
			{X: 5, Y: 5, W: 30, H: 30},
		},
		Walls: []Rect{
			{X: 18, Y: 14, W: 4, H: 1},
		},
		PlayerSpawn: Float2{X: 20, Y: 10},
		EnemySpawns: []Float2{
			{X: 12, Y: 28},
			{X: 28, Y: 28},
		},
		Pedestals: []PedestalConfig{
			{Position: Float2{X: 10, Y: 10}, Radius: 1.5, MaskIndex: int(KindGauntlets)},
			{Position: Float2{X: 30, Y: 10}, Radius: 1.5, MaskIndex: int(KindSpear)},
			{Position: Float2{X: 10, Y: 20}, Radius: 1.5, MaskIndex: int(KindScythe)},
			{Position: Float2{X: 30, Y: 20}, Radius: 1.5, MaskIndex: int(KindRifle)},
		},
	}

	Sim = SimConfig{
		TickRate:  60,
		FixedStep: 0.02,
		Seed:      42,
	}
}

// Default returns a deep copy of the package defaults.
func Default() *Tuning {
	return &Tuning{
		Player:    Player.clone(),
		Enemy:     Enemy.clone(),
		Brain:     Brain.clone(),
		Knockback: Knockback,
		Arena:     Arena.clone(),
		Sim:       Sim,
		CameraYaw: 0,
	}
}

// TotalTime is duration+cooldown, the value a ready slot's time buffer rests at.
func (a AttackDefinition) TotalTime() float64 {
	return a.Duration + a.Cooldown
}

// Reach is the outer radius of the hit area measured from the attacker.
func (a AttackDefinition) Reach() float64 {
	if a.Kind.Boxed() {
		return math.Abs(a.AoE.Y)
	}
	return math.Abs(a.ForwardOffset) + math.Abs(a.AoE.Y)*0.5
}

func (c CharacterConfig) clone() CharacterConfig {
	out := c
	out.Attacks = append([]AttackDefinition(nil), c.Attacks...)
	out.UnlockedAttacks = append([]int(nil), c.UnlockedAttacks...)
	out.Footsteps.Clips = append([]string(nil), c.Footsteps.Clips...)
	return out
}

func (a ArenaConfig) clone() ArenaConfig {
	out := a
	out.Ground = append([]Rect(nil), a.Ground...)
	out.Walls = append([]Rect(nil), a.Walls...)
	out.EnemySpawns = append([]Float2(nil), a.EnemySpawns...)
	out.Pedestals = append([]PedestalConfig(nil), a.Pedestals...)
	return out
}
