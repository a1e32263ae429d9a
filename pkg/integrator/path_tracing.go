package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// MinHitDistance is the lower bound of every intersection query.
// It keeps a scattered ray from re-hitting the surface it just left.
const MinHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	maxDepth int
	sky      core.SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, sky core.SkyGradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth: maxDepth,
		sky:      sky,
	}
}

// RayColor estimates the radiance arriving along ray.
// Each bounce multiplies the throughput by the material attenuation; the path ends
// when it escapes to the sky, is absorbed, or runs out of depth (both of the
// latter contribute black).
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, MinHitDistance, math32.MaxFloat32)
		if !isHit {
			return core.MultiplyVec(throughput, pt.sky.Color(ray.Direction))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = core.MultiplyVec(throughput, scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit exceeded, no more light is gathered
	return core.Vec3{}
}
