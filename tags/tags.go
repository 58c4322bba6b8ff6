package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Pedestal = donburi.NewTag().SetName("Pedestal")
	Ground   = donburi.NewTag().SetName("Ground")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvGround    = "ground"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvWeapon    = "weapon"
)
