package scene

import (
	"fmt"
	"sort"
)

// builtinScenes maps scene names to their constructors.
// The seed only affects scenes with randomly placed content.
var builtinScenes = map[string]func(seed int64) (*Scene, error){
	"default":     func(seed int64) (*Scene, error) { return NewDefaultScene() },
	"random":      func(seed int64) (*Scene, error) { return NewRandomScene(seed) },
	"two-spheres": func(seed int64) (*Scene, error) { return NewTwoSphereScene() },
	"spheregrid":  func(seed int64) (*Scene, error) { return NewSphereGridScene() },
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named built-in scene
func ByName(name string, seed int64) (*Scene, error) {
	build, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	s, err := build(seed)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.Seed = seed
	return s, nil
}
