package config

// Animator parameter names written by the character update loop every tick.
const (
	AnimSpeed          = "Speed"
	AnimMotionSpeed    = "MotionSpeed"
	AnimGrounded       = "Grounded"
	AnimFreeFall       = "FreeFall"
	AnimDodge          = "Dodge"
	AnimDodgeDirection = "DodgeDirection"
)

// FloatParams and BoolParams list the parameters in the order they are pushed.
var (
	FloatParams = []string{AnimSpeed, AnimMotionSpeed, AnimDodgeDirection}
	BoolParams  = []string{AnimGrounded, AnimFreeFall, AnimDodge}
)
