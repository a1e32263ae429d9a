package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is used for points, directions and linear RGB colors alike
type Vec3 = mgl32.Vec3

// nearZeroEpsilon is the per-component threshold below which a vector counts as degenerate
const nearZeroEpsilon = 1e-8

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func MultiplyVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Negate returns the negative of the vector
func Negate(v Vec3) Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// NearZero reports whether every component is within 1e-8 of zero
func NearZero(v Vec3) bool {
	return math32.Abs(v[0]) < nearZeroEpsilon &&
		math32.Abs(v[1]) < nearZeroEpsilon &&
		math32.Abs(v[2]) < nearZeroEpsilon
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float32) Vec3 {
	return Vec3{
		mgl32.Clamp(v[0], minVal, maxVal),
		mgl32.Clamp(v[1], minVal, maxVal),
		mgl32.Clamp(v[2], minVal, maxVal),
	}
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
