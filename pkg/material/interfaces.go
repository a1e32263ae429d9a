package material

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations must be safe for concurrent use: Scatter may only read
// the material and draws all randomness from the supplied generator.
type Material interface {
	// Scatter returns the attenuation and outgoing ray for a hit,
	// or false when the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always opposing the incoming ray
	T         float32   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the outward-facing side
	Material  Material  // Material of the hit object (shared, never copied)
}

// NewHitRecord builds a hit record, orienting the outward normal against the ray
func NewHitRecord(ray core.Ray, t float32, outwardNormal core.Vec3, material Material) *HitRecord {
	hit := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = core.Negate(outwardNormal)
	}
}
