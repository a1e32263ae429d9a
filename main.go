package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/imageio"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType  string
	configPath string
	width      int
	samples    int
	depth      int
	seed       int64
	workers    int
	tileSize   int
	format     string
	output     string
	set        map[string]bool // Flags given explicitly on the command line
}

// isSet reports whether the named flag was given on the command line
func (o options) isSet(name string) bool {
	return o.set[name]
}

func main() {
	// Parse command line flags
	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	flag.StringVar(&opts.configPath, "config", "", "JSON render configuration applied on top of the scene")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels, height follows the aspect ratio (scene default when unset)")
	flag.IntVar(&opts.samples, "spp", 0, "Samples per pixel (scene default when unset)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (scene default when unset)")
	flag.Int64Var(&opts.seed, "seed", 42, "Random seed")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.tileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.StringVar(&opts.format, "format", imageio.FormatPNG, "Output format: png or ppm")
	flag.StringVar(&opts.output, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	// Show help if requested
	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default     - Diffuse, glass and fuzzy metal spheres on a ground sphere")
		fmt.Println("  random      - The cover scene: hundreds of random small spheres around three big ones")
		fmt.Println("  two-spheres - A diffuse sphere resting on a huge ground sphere")
		fmt.Println("  spheregrid  - A grid of metallic spheres in rainbow colours")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	// Ctrl-C stops dispatching tiles; tiles already rendering finish first
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// run renders the selected scene and writes it to disk, returning the file name
func run(ctx context.Context, opts options, logger core.Logger) (string, error) {
	format, err := imageio.ParseFormat(opts.format)
	if err != nil {
		return "", err
	}

	selectedScene, err := selectScene(opts)
	if err != nil {
		return "", err
	}
	if err := configureScene(selectedScene, opts); err != nil {
		return "", err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
	}, logger)
	if err != nil {
		return "", err
	}

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	logger.Printf("Samples per pixel: %.1f (%d pixels)\n", stats.AverageSamples, stats.TotalPixels)

	filename := opts.output
	if filename == "" {
		filename = outputPath(selectedScene.Name, format, time.Now())
	}
	if err := imageio.Save(filename, format, img); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene builds a built-in scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene type is required")
	}
	return scene.ByName(sceneType, seed)
}

// selectScene builds the scene named by -scene or the config file.
// Explicit flags win over the file, which wins over flag defaults; the seed
// follows the same order since it shapes the content of random scenes.
func selectScene(opts options) (*scene.Scene, error) {
	sceneType, seed := opts.sceneType, opts.seed

	if opts.configPath != "" {
		fileConfig, err := scene.LoadConfig(opts.configPath, scene.Config{
			Scene:    sceneType,
			Sampling: scene.SamplingConfig{Seed: seed},
		})
		if err != nil {
			return nil, err
		}
		if !opts.isSet("scene") {
			sceneType = fileConfig.Scene
		}
		if !opts.isSet("seed") {
			seed = fileConfig.Sampling.Seed
		}
	}

	return createScene(sceneType, seed)
}

// configureScene applies the JSON config file and then the explicitly set
// command line flags, so flags win over the file.
func configureScene(s *scene.Scene, opts options) error {
	config := scene.ConfigFromScene(s)

	if opts.configPath != "" {
		loaded, err := scene.LoadConfig(opts.configPath, config)
		if err != nil {
			return err
		}
		config = loaded
	}

	if opts.isSet("width") {
		config.Sampling.Width = opts.width
		config.Sampling.Height = scene.HeightForWidth(opts.width, config.Camera.AspectRatio)
	}
	if opts.isSet("spp") {
		config.Sampling.SamplesPerPixel = opts.samples
	}
	if opts.isSet("depth") {
		config.Sampling.MaxDepth = opts.depth
	}
	if opts.isSet("seed") {
		config.Sampling.Seed = opts.seed
	}

	return s.Apply(config)
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}
