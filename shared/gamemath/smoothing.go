package gamemath

import "math"

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// RoundMillis rounds to three decimal places.
func RoundMillis(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// DeltaAngle is the shortest signed difference from current to target, in (-π, π].
func DeltaAngle(current, target float64) float64 {
	delta := math.Mod(target-current, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

// SmoothDamp moves current toward target with a critically damped spring that settles in
// roughly smoothTime seconds. velocity carries the spring state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	wanted := target
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Never overshoot
	if (wanted-current > 0) == (output > wanted) {
		output = wanted
		*velocity = (output - wanted) / dt
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in radians, taking the short way around.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}

// WrapAngle maps a yaw into (-π, π].
func WrapAngle(a float64) float64 {
	return DeltaAngle(0, a)
}
