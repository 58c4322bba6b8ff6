package config

import (
	"fmt"
	"image/color"
	"strings"
)

// AttackKind selects the type-specific parts of an attack: preview shape, movement and knockback.
type AttackKind int

const (
	KindGauntlets AttackKind = iota
	KindSpear
	KindScythe
	KindRifle
)

var kindNames = map[AttackKind]string{
	KindGauntlets: "gauntlets",
	KindSpear:     "spear",
	KindScythe:    "scythe",
	KindRifle:     "rifle",
}

func (k AttackKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AttackKind(%d)", int(k))
}

func (k AttackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AttackKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown attack kind %q", text)
}

// Lunges reports whether the attack carries the character forward and ignores other bodies while active.
func (k AttackKind) Lunges() bool {
	return k == KindSpear
}

// BlendsKnockback reports whether knockback mixes the attacker's aim with the away vector.
func (k AttackKind) BlendsKnockback() bool {
	return k == KindSpear || k == KindRifle
}

// Boxed reports whether the hit area is an oriented box rather than a circle.
func (k AttackKind) Boxed() bool {
	return k == KindSpear || k == KindRifle
}

// AttackDefinition is one immutable catalog entry.
type AttackDefinition struct {
	Name     string     `yaml:"name"`
	Kind     AttackKind `yaml:"kind"`
	Duration float64    `yaml:"duration"`
	Cooldown float64    `yaml:"cooldown"`

	// AoE.X is the width (box) or shader radius (circle); AoE.Y is the reach.
	AoE            Float2  `yaml:"aoe"`
	Damage         float64 `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockback_force"`
	Movement       Float3  `yaml:"movement"`
	ForwardOffset  float64 `yaml:"forward_offset"`

	SelectionDirection Float2     `yaml:"selection_direction"`
	Color              color.RGBA `yaml:"color"`
}

// DefaultAttacks returns the four mask attacks in slot order.
func DefaultAttacks() []AttackDefinition {
	return []AttackDefinition{
		{
			Name:               "Gauntlets",
			Kind:               KindGauntlets,
			Duration:           0.3,
			Cooldown:           0.4,
			AoE:                Float2{X: 1.5, Y: 2},
			Damage:             1,
			KnockbackForce:     2,
			ForwardOffset:      1,
			SelectionDirection: Float2{X: 0, Y: 1},
			Color:              color.RGBA{R: 255, G: 140, B: 0, A: 255},
		},
		{
			Name:               "Spear",
			Kind:               KindSpear,
			Duration:           0.4,
			Cooldown:           1,
			AoE:                Float2{X: 1, Y: 4},
			Damage:             2,
			KnockbackForce:     3,
			Movement:           Float3{Z: 3},
			SelectionDirection: Float2{X: 1, Y: 0},
			Color:              color.RGBA{R: 0, G: 200, B: 255, A: 255},
		},
		{
			Name:               "Scythe",
			Kind:               KindScythe,
			Duration:           0.5,
			Cooldown:           1.2,
			AoE:                Float2{X: 3, Y: 3.5},
			Damage:             2,
			KnockbackForce:     4,
			ForwardOffset:      0,
			SelectionDirection: Float2{X: 0, Y: -1},
			Color:              color.RGBA{R: 128, G: 0, B: 255, A: 255},
		},
		{
			Name:               "Rifle",
			Kind:               KindRifle,
			Duration:           0.2,
			Cooldown:           1.5,
			AoE:                Float2{X: 0.5, Y: 12},
			Damage:             1.5,
			KnockbackForce:     1,
			SelectionDirection: Float2{X: -1, Y: 0},
			Color:              color.RGBA{R: 255, G: 230, B: 0, A: 255},
		},
	}
}
