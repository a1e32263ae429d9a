package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// A scene is read-only once rendering starts.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.ShapeList // Objects in the scene
	Sky            core.SkyGradient    // Background for rays that escape
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   `json:"width"`           // Image width
	Height          int   `json:"height"`          // Image height
	SamplesPerPixel int   `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int   `json:"maxDepth"`        // Maximum ray bounce depth
	Seed            int64 `json:"seed"`            // Base seed for all random sampling
}

// Validate checks the sampling parameters
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// HeightForWidth returns the image height matching the camera aspect ratio, rounded to the nearest pixel
func HeightForWidth(width int, aspectRatio float32) int {
	return max(1, int(float32(width)/aspectRatio+0.5))
}

// newScene builds the camera from config and wraps everything in a Scene
func newScene(name string, cameraConfig geometry.CameraConfig, sampling SamplingConfig, world *geometry.ShapeList) (*Scene, error) {
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		World:          world,
		Sky:            core.DefaultSky(),
		SamplingConfig: sampling,
	}, nil
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}
	if s.World == nil {
		return fmt.Errorf("scene %q has no world", s.Name)
	}
	if err := s.World.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}
