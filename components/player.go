package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Pedestal is the one pedestal currently in range, if any.
	Pedestal *donburi.Entry

	// AwaitRelease blocks attacks until the button is let go after a pedestal pickup.
	AwaitRelease bool
}

var Player = donburi.NewComponentType[PlayerData]()
