package core

import "math/rand"

// RandomFloat returns a random float32 in [min, max)
func RandomFloat(random *rand.Rand, min, max float32) float32 {
	return min + (max-min)*random.Float32()
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float32) Vec3 {
	return Vec3{
		RandomFloat(random, min, max),
		RandomFloat(random, min, max),
		RandomFloat(random, min, max),
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube, accept if inside
		p := RandomVec3(random, -1, 1)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomInUnitSphere(random)
		// Reject points too close to the origin to normalize reliably
		if p.Dot(p) > 1e-12 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(RandomFloat(random, -1, 1), RandomFloat(random, -1, 1), 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
