package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := mgl32.DegToRad(h)

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.Clamp(core.NewVec3(r, g, blue), 0, 1)
}

// NewSphereGridScene creates a grid of fuzzy metal spheres whose color sweeps
// hue along X and chroma along Z
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.02,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           800,
		Height:          HeightForWidth(800, cameraConfig.AspectRatio),
		SamplesPerPixel: 100,
		MaxDepth:        40,
		Seed:            42,
	}

	// Ground sphere large enough to read as a plane at y=0
	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(4.5, -1000, 4.5), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	const gridSize = 20
	const targetArea = float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := mgl32.Clamp(spacing*0.35, 0.02, 0.35)

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2.0 + 4.5
			z := float32(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float32(i) / float32(gridSize-1)) * 360.0
			chroma := minChroma + (float32(j)/float32(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			world.Add(geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return newScene("spheregrid", cameraConfig, samplingConfig, world)
}
