package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// MaterialConfig describes a material in a JSON scene description.
// Type is one of lambertian (or diffuse), metal (or conductor), dielectric.
type MaterialConfig struct {
	Type            string    `json:"type"`
	Albedo          core.Vec3 `json:"albedo"`
	Fuzz            float32   `json:"fuzz"`
	RefractionIndex float32   `json:"refractionIndex"`
}

// SphereConfig describes one sphere in a JSON scene description
type SphereConfig struct {
	Center   core.Vec3      `json:"center"`
	Radius   float32        `json:"radius"`
	Material MaterialConfig `json:"material"`
}

// convertMaterial converts a material description to our material system
func convertMaterial(config MaterialConfig) (material.Material, error) {
	switch config.Type {
	case "lambertian", "diffuse":
		return material.NewLambertian(config.Albedo), nil

	case "metal", "conductor":
		if !(config.Fuzz >= 0 && config.Fuzz <= 1) {
			return nil, fmt.Errorf("invalid metal fuzz %v: must be between 0 and 1", config.Fuzz)
		}
		return material.NewMetal(config.Albedo, config.Fuzz), nil

	case "dielectric":
		ior := config.RefractionIndex
		if ior == 0 {
			ior = 1.5 // Default glass IOR
		}
		if !(ior > 0) {
			return nil, fmt.Errorf("invalid dielectric IOR %v: must be positive", ior)
		}
		return material.NewDielectric(ior), nil

	default:
		return nil, fmt.Errorf("unsupported material type: %q", config.Type)
	}
}

// buildWorld converts sphere descriptions into a validated shape list
func buildWorld(spheres []SphereConfig) (*geometry.ShapeList, error) {
	world := geometry.NewShapeList()
	for i, config := range spheres {
		mat, err := convertMaterial(config.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sphere := geometry.NewSphere(config.Center, config.Radius, mat)
		if err := sphere.Validate(); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		world.Add(sphere)
	}
	return world, nil
}
