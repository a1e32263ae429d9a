package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Validate rejects spheres that would produce non-finite intersections
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math32.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere at %v: radius must be positive and finite, got %v", s.Center, s.Radius)
	}
	if !core.IsFinite(s.Center) {
		return fmt.Errorf("sphere center must be finite, got %v", s.Center)
	}
	if s.Material == nil {
		return fmt.Errorf("sphere at %v has no material", s.Center)
	}
	return nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	outwardNormal := ray.At(root).Sub(s.Center).Mul(1.0 / s.Radius)
	return material.NewHitRecord(ray, root, outwardNormal, s.Material), true
}
