package geometry

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to construct a camera
type CameraConfig struct {
	LookFrom      core.Vec3 `json:"lookFrom"`      // Camera position
	LookAt        core.Vec3 `json:"lookAt"`        // Point the camera is looking at
	Up            core.Vec3 `json:"up"`            // Up direction (usually 0,1,0)
	VFov          float32   `json:"vfov"`          // Vertical field of view in degrees
	AspectRatio   float32   `json:"aspectRatio"`   // Width / height
	Aperture      float32   `json:"aperture"`      // Lens diameter, 0 disables depth of field
	FocusDistance float32   `json:"focusDistance"` // Distance to the focal plane, 0 = auto (distance to LookAt)
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float32
}

// NewCamera derives the viewport geometry from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %v", config.AspectRatio)
	}
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("camera vertical field of view must be in (0, 180) degrees, got %v", config.VFov)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture must not be negative, got %v", config.Aperture)
	}
	if !core.IsFinite(config.LookFrom) || !core.IsFinite(config.LookAt) || !core.IsFinite(config.Up) {
		return nil, fmt.Errorf("camera vectors must be finite")
	}

	view := config.LookFrom.Sub(config.LookAt)
	if core.NearZero(view) {
		return nil, fmt.Errorf("camera lookFrom and lookAt must differ, both are %v", config.LookFrom)
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = view.Len()
	}
	if !(focusDistance > 0) {
		return nil, fmt.Errorf("camera focus distance must be positive, got %v", config.FocusDistance)
	}

	theta := mgl32.DegToRad(config.VFov)
	h := math32.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := view.Normalize()
	side := config.Up.Cross(w)
	if side.Len() < 1e-6*config.Up.Len() || core.NearZero(config.Up) {
		return nil, fmt.Errorf("camera up vector %v must be non-zero and not parallel to the view direction", config.Up)
	}
	u := side.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Mul(focusDistance * viewportWidth)
	vertical := v.Mul(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The lens is only sampled when the aperture is non-zero; random may be nil otherwise.
func (c *Camera) GetRay(s, t float32, random *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Mul(c.lensRadius)
		offset = c.u.Mul(rd.X()).Add(c.v.Mul(rd.Y()))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	return core.NewRay(origin, direction)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return core.Negate(c.w)
}

// LensRadius returns the radius of the thin lens, 0 for a pinhole camera
func (c *Camera) LensRadius() float32 {
	return c.lensRadius
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}
