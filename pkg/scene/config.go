package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Config is the JSON render configuration.
// Fields absent from the file keep the values of the scene it is applied to.
// A non-empty Spheres list replaces the scene's world.
type Config struct {
	Scene    string                `json:"scene,omitempty"`
	Sampling SamplingConfig        `json:"sampling"`
	Camera   geometry.CameraConfig `json:"camera"`
	Spheres  []SphereConfig        `json:"spheres,omitempty"`
}

// ConfigFromScene captures a scene's current settings as a Config
func ConfigFromScene(s *Scene) Config {
	return Config{
		Scene:    s.Name,
		Sampling: s.SamplingConfig,
		Camera:   s.CameraConfig,
	}
}

// LoadConfig reads the JSON file at path on top of base
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, base)
}

// ParseConfig decodes JSON on top of base, so only the keys present override it
func ParseConfig(data []byte, base Config) (Config, error) {
	config := base
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return config, nil
}

// Apply installs the sampling, camera and world of config into the scene.
// The scene is left unchanged when any part is invalid.
func (s *Scene) Apply(config Config) error {
	if err := config.Sampling.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	camera, err := geometry.NewCamera(config.Camera)
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	world := s.World
	if len(config.Spheres) > 0 {
		if world, err = buildWorld(config.Spheres); err != nil {
			return fmt.Errorf("scene %q: %w", s.Name, err)
		}
	}

	s.Camera = camera
	s.CameraConfig = config.Camera
	s.SamplingConfig = config.Sampling
	s.World = world
	return nil
}
