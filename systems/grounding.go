package systems

// updateGrounding integrates gravity and the fall timer from last frame's grounded state,
// then probes the ground at the current position.
func updateGrounding(f *frame, integrator MotionIntegrator) {
	loco := f.loco
	fall := f.cfg.Fall

	if loco.Grounded {
		loco.FallTimeBuffer = 0
		loco.FreeFall = false

		// Stop velocity dropping infinitely when grounded
		if loco.VerticalVelocity < 0 {
			loco.VerticalVelocity = fall.GroundedVelocity
		}
	} else {
		if loco.FallTimeBuffer < fall.FallTimeout {
			loco.FallTimeBuffer += f.dt
		} else {
			loco.FreeFall = true
		}
	}

	if loco.VerticalVelocity > -fall.TerminalVelocity {
		loco.VerticalVelocity += fall.Gravity * f.dt
	}

	wasGrounded := loco.Grounded
	loco.Grounded = integrator.Grounded(f.entry)
	loco.JustLanded = loco.Grounded && !wasGrounded
}
