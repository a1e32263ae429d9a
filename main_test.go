package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"random scene", "random", false},
		{"two-spheres scene", "two-spheres", false},
		{"spheregrid scene", "spheregrid", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.SamplingConfig.Width <= 0 || scene.SamplingConfig.Height <= 0 {
				t.Errorf("Scene sampling size should be positive, got %dx%d",
					scene.SamplingConfig.Width, scene.SamplingConfig.Height)
			}
		})
	}
}

func TestConfigureScene_FlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "render.json")
	config := `{"sampling": {"samplesPerPixel": 7, "maxDepth": 3}, "camera": {"vfov": 40}}`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	s, err := createScene("two-spheres", 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	opts := options{
		configPath: configPath,
		width:      80,
		samples:    2,
		depth:      9, // Not set on the command line, so the file wins
		set:        map[string]bool{"width": true, "spp": true},
	}
	if err := configureScene(s, opts); err != nil {
		t.Fatalf("configureScene failed: %v", err)
	}

	if s.SamplingConfig.Width != 80 || s.SamplingConfig.Height != 60 {
		t.Errorf("Expected 80x60, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.SamplingConfig.SamplesPerPixel != 2 {
		t.Errorf("Flag should win over config file, got %d samples", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth != 3 {
		t.Errorf("Expected depth 3 from config file, got %d", s.SamplingConfig.MaxDepth)
	}
	if s.CameraConfig.VFov != 40 {
		t.Errorf("Expected vfov 40 from config file, got %f", s.CameraConfig.VFov)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestSelectScene(t *testing.T) {
	configPath := writeConfig(t, `{"scene": "random", "sampling": {"seed": 7}}`)

	tests := []struct {
		name          string
		opts          options
		expectedScene string
		expectedSeed  int64
	}{
		{
			name:          "flag defaults without config",
			opts:          options{sceneType: "default", seed: 42},
			expectedScene: "default",
			expectedSeed:  42,
		},
		{
			name:          "config file picks scene and seed",
			opts:          options{sceneType: "default", seed: 42, configPath: configPath},
			expectedScene: "random",
			expectedSeed:  7,
		},
		{
			name: "explicit flags win over config file",
			opts: options{
				sceneType:  "two-spheres",
				seed:       3,
				configPath: configPath,
				set:        map[string]bool{"scene": true, "seed": true},
			},
			expectedScene: "two-spheres",
			expectedSeed:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := selectScene(tt.opts)
			if err != nil {
				t.Fatalf("selectScene failed: %v", err)
			}
			if s.Name != tt.expectedScene {
				t.Errorf("Expected scene %q, got %q", tt.expectedScene, s.Name)
			}
			if s.SamplingConfig.Seed != tt.expectedSeed {
				t.Errorf("Expected seed %d, got %d", tt.expectedSeed, s.SamplingConfig.Seed)
			}
		})
	}
}

func TestConfigureScene_SeedFlagWinsOverConfigFile(t *testing.T) {
	configPath := writeConfig(t, `{"sampling": {"seed": 7}}`)
	opts := options{sceneType: "two-spheres", seed: 3, configPath: configPath, set: map[string]bool{"seed": true}}

	s, err := selectScene(opts)
	if err != nil {
		t.Fatalf("selectScene failed: %v", err)
	}
	if err := configureScene(s, opts); err != nil {
		t.Fatalf("configureScene failed: %v", err)
	}
	if s.SamplingConfig.Seed != 3 {
		t.Errorf("Expected seed 3 from the flag, got %d", s.SamplingConfig.Seed)
	}

	// Without the flag the file's seed is used
	opts.set = nil
	s, err = selectScene(opts)
	if err != nil {
		t.Fatalf("selectScene failed: %v", err)
	}
	if err := configureScene(s, opts); err != nil {
		t.Fatalf("configureScene failed: %v", err)
	}
	if s.SamplingConfig.Seed != 7 {
		t.Errorf("Expected seed 7 from the config file, got %d", s.SamplingConfig.Seed)
	}
}

func TestSelectScene_MissingConfig(t *testing.T) {
	opts := options{sceneType: "default", configPath: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := selectScene(opts); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	got := outputPath("random", "ppm", now)
	expected := filepath.Join("output", "random", "render_20240305_140709.ppm")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRun_WritesPPM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "two.ppm")
	opts := options{
		sceneType: "two-spheres",
		width:     8,
		samples:   1,
		depth:     2,
		seed:      1,
		workers:   2,
		tileSize:  4,
		format:    "ppm",
		output:    out,
		set:       map[string]bool{"width": true, "spp": true, "depth": true, "seed": true},
	}

	filename, err := run(context.Background(), opts, discardLogger{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if filename != out {
		t.Errorf("Expected %s, got %s", out, filename)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3" || lines[1] != "8 6" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
	if len(lines) != 3+8*6 {
		t.Errorf("Expected %d lines, got %d", 3+8*6, len(lines))
	}
}

func TestRun_RejectsBadFormat(t *testing.T) {
	opts := options{sceneType: "default", format: "gif", tileSize: 8}
	if _, err := run(context.Background(), opts, discardLogger{}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
