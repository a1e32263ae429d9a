package core

// SkyGradient is the background seen by rays that escape the scene.
// It blends vertically from Bottom (looking straight down) to Top (straight up).
type SkyGradient struct {
	Bottom Vec3
	Top    Vec3
}

// DefaultSky returns the white-to-sky-blue gradient
func DefaultSky() SkyGradient {
	return SkyGradient{
		Bottom: NewVec3(1.0, 1.0, 1.0),
		Top:    NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the background color seen along direction
func (g SkyGradient) Color(direction Vec3) Vec3 {
	unitDirection := direction.Normalize()
	t := 0.5 * (unitDirection.Y() + 1.0)
	return Lerp(g.Bottom, g.Top, t)
}
