package components

import (
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Faction separates sides. Characters never damage their own faction.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Behavior is the set of override points a character variant plugs into the shared update loop.
type Behavior interface {
	// AimDirection turns normalized aim input into a world-space aim direction.
	// ok=false leaves the current aim untouched.
	AimDirection(e *donburi.Entry, aim gamemath.Vec2) (dir gamemath.Vec2, ok bool)
	// MoveHeading turns normalized move input into the yaw locomotion steers toward.
	MoveHeading(move gamemath.Vec2) float64
	// AfterAim runs once the frame's aim is resolved.
	AfterAim(e *donburi.Entry)
	// GateAttack runs before the attack state machine. Returning false skips it for the frame.
	GateAttack(e *donburi.Entry) bool
}

type CharacterData struct {
	Faction  Faction
	Config   *config.CharacterConfig
	Behavior Behavior
}

var Character = donburi.NewComponentType[CharacterData]()
