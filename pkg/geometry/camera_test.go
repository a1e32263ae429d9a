package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func basicCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera, err := NewCamera(basicCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GetRay(0.5, 0.5, nil)
	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Pinhole ray should start at lookFrom, got %v", ray.Origin)
	}
	if !ray.Direction.Normalize().ApproxEqualThreshold(core.NewVec3(0, 0, -1), 1e-6) {
		t.Errorf("Center ray should point at lookAt, got %v", ray.Direction)
	}
	if !camera.Forward().ApproxEqualThreshold(core.NewVec3(0, 0, -1), 1e-6) {
		t.Errorf("Forward should be (0,0,-1), got %v", camera.Forward())
	}
}

func TestCamera_ViewportCorners(t *testing.T) {
	// vfov 90 => h = 1, viewport 4 x 2 at focus distance 1
	camera, err := NewCamera(basicCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		s, t     float32
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, nil)
			if !ray.Direction.ApproxEqualThreshold(tt.expected, 1e-5) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_FocusDistanceScalesViewport(t *testing.T) {
	config := basicCameraConfig()
	config.FocusDistance = 3
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GetRay(0, 0, nil)
	if !ray.Direction.ApproxEqualThreshold(core.NewVec3(-6, -3, -3), 1e-5) {
		t.Errorf("Expected viewport scaled by focus distance, got %v", ray.Direction)
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	config := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.5,
		Aperture:      0.5,
		FocusDistance: 5,
	}
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera.LensRadius() != 0.25 {
		t.Errorf("Expected lens radius 0.25, got %f", camera.LensRadius())
	}

	random := rand.New(rand.NewSource(42))
	focusPoint := core.NewVec3(0, 0, 0)
	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)

		// Origin stays on the lens plane within the lens radius
		offset := ray.Origin.Sub(config.LookFrom)
		if math32.Abs(offset.Z()) > 1e-5 {
			t.Fatalf("Ray origin %v left the lens plane", ray.Origin)
		}
		if offset.Len() > 0.25+1e-5 {
			t.Fatalf("Ray origin offset %v exceeds the lens radius", offset)
		}
		if offset.Len() > 1e-3 {
			moved = true
		}

		// Every ray through the image center passes through the focus point
		if !ray.At(1).ApproxEqualThreshold(focusPoint, 1e-4) {
			t.Fatalf("Ray %v does not converge on the focal point, reached %v", ray, ray.At(1))
		}
	}
	if !moved {
		t.Error("Expected lens sampling to move ray origins")
	}
}

func TestCamera_AutoFocusDistance(t *testing.T) {
	config := CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
	}
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Auto focus places the viewport plane on lookAt
	ray := camera.GetRay(0.5, 0.5, nil)
	if !ray.At(1).ApproxEqualThreshold(config.LookAt, 1e-5) {
		t.Errorf("Expected center ray to reach lookAt at t=1, got %v", ray.At(1))
	}
}

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
	}{
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"negative aspect ratio", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"fov of 180", func(c *CameraConfig) { c.VFov = 180 }},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -0.1 }},
		{"negative focus distance", func(c *CameraConfig) { c.FocusDistance = -1 }},
		{"lookFrom equals lookAt", func(c *CameraConfig) { c.LookAt = c.LookFrom }},
		{"zero up vector", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 0) }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
		{"NaN position", func(c *CameraConfig) { c.LookFrom = core.NewVec3(math32.NaN(), 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := basicCameraConfig()
			tt.modify(&config)
			if _, err := NewCamera(config); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := basicCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{VFov: 20, Aperture: 0.1})

	if merged.VFov != 20 || merged.Aperture != 0.1 {
		t.Errorf("Override fields not applied: %+v", merged)
	}
	if merged.LookFrom != base.LookFrom || merged.AspectRatio != base.AspectRatio {
		t.Errorf("Zero-valued override fields should keep base values: %+v", merged)
	}
}
