// Package gamemath holds the scalar and planar helpers shared by the simulation.
// Planar vectors are donburi Vec2 values with X = world x and Y = world z. Arithmetic uses
// the Vec2 methods; the helpers here cover what Vec2 lacks.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

type Vec2 = dmath.Vec2

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func Neg(v Vec2) Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Dot takes values, unlike Vec2.Dot, so call results can be passed directly.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func LengthSq(v Vec2) float64 { return v.X*v.X + v.Y*v.Y }

func DistanceSq(a, b Vec2) float64 { return LengthSq(a.Sub(b)) }

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v Vec2) Vec2 {
	return NormalizeSafe(v, Vec2{})
}

// NormalizeSafe returns v scaled to unit length, or fallback when v is too short to normalize.
func NormalizeSafe(v Vec2, fallback Vec2) Vec2 {
	l := v.Magnitude()
	if l < 1e-9 {
		return fallback
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Forward is the unit heading for a yaw in radians. Yaw 0 faces +Y, yaw π/2 faces +X.
func Forward(yaw float64) Vec2 {
	return Vec2{X: math.Sin(yaw), Y: math.Cos(yaw)}
}

// Heading is the yaw of v, the inverse of Forward.
func Heading(v Vec2) float64 {
	return math.Atan2(v.X, v.Y)
}

// Rotate turns v by yaw radians in the same sense as Forward.
func Rotate(v Vec2, yaw float64) Vec2 {
	s, c := math.Sincos(yaw)
	return Vec2{X: v.X*c + v.Y*s, Y: -v.X*s + v.Y*c}
}

// Sign returns -1, 0 or +1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
