package systems

import (
	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation forwards each character's parameter block to its animator.
func UpdateAnimation(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Sink == nil {
			return
		}
		for _, name := range config.FloatParams {
			anim.Sink.SetFloat(name, anim.Floats[name])
		}
		for _, name := range config.BoolParams {
			anim.Sink.SetBool(name, anim.Bools[name])
		}
	})
}
