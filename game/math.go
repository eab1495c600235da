package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// RoundVec64 will round a 64-bit vector to a given precision.
func RoundVec64(v mgl64.Vec3, p int) mgl64.Vec3 {
	return mgl64.Vec3{Round64(v.X(), p), Round64(v.Y(), p), Round64(v.Z(), p)}
}

// DirectionVector returns a direction vector from the given yaw and pitch values, in degrees.
func DirectionVector(yaw, pitch float64) mgl64.Vec3 {
	yawRad, pitchRad := mgl64.DegToRad(yaw), mgl64.DegToRad(pitch)
	m := math.Cos(pitchRad)

	return mgl64.Vec3{
		-m * math.Sin(yawRad),
		-math.Sin(pitchRad),
		m * math.Cos(yawRad),
	}
}

// HorizontalForward returns the unit vector the given yaw faces along the ground plane.
func HorizontalForward(yaw float64) mgl64.Vec3 {
	yawRad := mgl64.DegToRad(yaw)
	return mgl64.Vec3{-math.Sin(yawRad), 0, math.Cos(yawRad)}
}

// RotateYaw rotates a vector around the vertical axis by deg degrees.
func RotateYaw(v mgl64.Vec3, deg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(deg)
	sin, cos := math.Sin(r), math.Cos(r)
	return mgl64.Vec3{
		v.X()*cos - v.Z()*sin,
		v.Y(),
		v.X()*sin + v.Z()*cos,
	}
}

// LerpVec64 linearly interpolates from a towards b by delta.
func LerpVec64(a, b mgl64.Vec3, delta float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(delta))
}

// Lerp64 linearly interpolates from a towards b by delta.
func Lerp64(a, b, delta float64) float64 {
	return a + (b-a)*delta
}

// NormalizeOr returns v as a unit vector, or fallback if v is too short to normalize.
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return fallback
	}
	return v.Mul(1 / l)
}

// Returns -1 if x < y, 0 if x == y, or 1 if x > y
func PHPSpaceshipOp(x, y float64) float64 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
