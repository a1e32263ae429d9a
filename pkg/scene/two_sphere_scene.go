package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewTwoSphereScene creates the minimal diffuse scene: a small sphere in front of
// the camera sitting on a huge ground sphere, seen through a 90° pinhole camera.
func NewTwoSphereScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 4.0 / 3.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           400,
		Height:          HeightForWidth(400, cameraConfig.AspectRatio),
		SamplesPerPixel: 50,
		MaxDepth:        10,
		Seed:            42,
	}

	diffuse := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, diffuse),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, diffuse),
	)

	return newScene("two-spheres", cameraConfig, samplingConfig, world)
}
