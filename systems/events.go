package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Overlap reports an active weapon owned by Attacker touching Target's body.
type Overlap struct {
	Attacker *donburi.Entry
	Target   *donburi.Entry
}

type AttackStarted struct {
	Attacker *donburi.Entry
	Index    int
	Kind     config.AttackKind
}

type HitLanded struct {
	Attacker  *donburi.Entry
	Target    *donburi.Entry
	Damage    float64
	Knockback gamemath.Vec2
}

type Dodged struct {
	Entry *donburi.Entry
	Sign  float64
}

type Died struct {
	Entry   *donburi.Entry
	Faction components.Faction
}

var (
	OverlapEvent       = events.NewEventType[Overlap]()
	AttackStartedEvent = events.NewEventType[AttackStarted]()
	HitLandedEvent     = events.NewEventType[HitLanded]()
	DodgedEvent        = events.NewEventType[Dodged]()
	DiedEvent          = events.NewEventType[Died]()
)
