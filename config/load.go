package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog = errors.New("attack catalog is empty")
	ErrSlotCount    = errors.New("attack catalog size does not match slot count")
	ErrAttackTiming = errors.New("attack duration must be positive and cooldown non-negative")
	ErrDodgeTiming  = errors.New("dodge time plus backward delay must be below dodge timeout")
	ErrWeaponIndex  = errors.New("attack index out of range")
	ErrArena        = errors.New("arena dimensions must be positive")
)

// Load reads a YAML tuning file over the package defaults and validates the result.
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML onto the defaults. Keys missing from data keep their default values.
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the invariants every world relies on. A failure is a configuration
// error and worlds refuse to start.
func (t *Tuning) Validate() error {
	if err := t.Player.validate(); err != nil {
		return fmt.Errorf("config: player: %w", err)
	}
	if err := t.Enemy.validate(); err != nil {
		return fmt.Errorf("config: enemy: %w", err)
	}
	if t.Brain.Weapon < 0 || t.Brain.Weapon >= len(t.Enemy.Attacks) {
		return fmt.Errorf("config: brain weapon %d: %w", t.Brain.Weapon, ErrWeaponIndex)
	}
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 || t.Arena.CellSize <= 0 {
		return fmt.Errorf("config: arena %dx%d cell %d: %w", t.Arena.Width, t.Arena.Height, t.Arena.CellSize, ErrArena)
	}
	for i, p := range t.Arena.Pedestals {
		if p.MaskIndex < 0 || p.MaskIndex >= len(t.Player.Attacks) {
			return fmt.Errorf("config: pedestal %d mask %d: %w", i, p.MaskIndex, ErrWeaponIndex)
		}
	}
	if t.Sim.TickRate <= 0 || t.Sim.FixedStep <= 0 {
		return fmt.Errorf("config: sim tick rate %d step %v: %w", t.Sim.TickRate, t.Sim.FixedStep, ErrArena)
	}
	return nil
}

func (c CharacterConfig) validate() error {
	if len(c.Attacks) == 0 {
		return ErrEmptyCatalog
	}
	if len(c.Attacks) != AttackSlotCount {
		return fmt.Errorf("%d attacks, want %d: %w", len(c.Attacks), AttackSlotCount, ErrSlotCount)
	}
	for i, a := range c.Attacks {
		if a.Duration <= 0 || a.Cooldown < 0 {
			return fmt.Errorf("attack %d (%s): %w", i, a.Name, ErrAttackTiming)
		}
	}
	if c.Dodge.Time+c.Dodge.BackwardDelay >= c.Dodge.Timeout {
		return fmt.Errorf("%v + %v >= %v: %w", c.Dodge.Time, c.Dodge.BackwardDelay, c.Dodge.Timeout, ErrDodgeTiming)
	}
	if c.StartingAttack < -1 || c.StartingAttack >= len(c.Attacks) {
		return fmt.Errorf("starting attack %d: %w", c.StartingAttack, ErrWeaponIndex)
	}
	for _, idx := range c.UnlockedAttacks {
		if idx < 0 || idx >= len(c.Attacks) {
			return fmt.Errorf("unlocked attack %d: %w", idx, ErrWeaponIndex)
		}
	}
	return nil
}
