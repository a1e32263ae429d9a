package integrator

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// The world is shared read-only between concurrent callers; all randomness
// comes from the caller-owned generator.
type Integrator interface {
	RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) core.Vec3
}
