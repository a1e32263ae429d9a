package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)

	// OnTile, when set, is called on the collecting goroutine after each
	// tile finishes. completed counts tiles done so far, including this one.
	OnTile func(result TileResult, completed, total int)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene by distributing tiles over a worker pool
type Raytracer struct {
	scene    *scene.Scene
	config   RenderConfig
	tiles    []*Tile
	renderer *TileRenderer
	logger   core.Logger
}

// NewRaytracer validates the scene and prepares the tile grid
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, fmt.Errorf("scene is required")
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if config.TileSize < 1 {
		return nil, fmt.Errorf("tile size must be at least 1, got %d", config.TileSize)
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = nopLogger{}
	}

	sampling := s.SamplingConfig
	pathTracer := integrator.NewPathTracingIntegrator(sampling.MaxDepth, s.Sky)

	return &Raytracer{
		scene:    s,
		config:   config,
		tiles:    NewTileGrid(sampling.Width, sampling.Height, config.TileSize, sampling.Seed),
		renderer: NewTileRenderer(s, pathTracer),
		logger:   logger,
	}, nil
}

// NumTiles returns the number of tiles the image is split into
func (rt *Raytracer) NumTiles() int {
	return len(rt.tiles)
}

// Render renders the full image. When ctx is cancelled, tiles that have not
// started are skipped, in-flight tiles complete, and ctx.Err() is returned.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	sampling := rt.scene.SamplingConfig
	img := image.NewRGBA(image.Rect(0, 0, sampling.Width, sampling.Height))

	rt.logger.Printf("Rendering %q: %dx%d, %d samples, depth %d, %d tiles on %d workers\n",
		rt.scene.Name, sampling.Width, sampling.Height, sampling.SamplesPerPixel,
		sampling.MaxDepth, len(rt.tiles), rt.config.NumWorkers)

	pool := NewWorkerPool(rt.renderer, len(rt.tiles), rt.config.NumWorkers)
	pool.Start(ctx)
	for i, tile := range rt.tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	var stats RenderStats
	var renderErr error
	progressStep := max(1, len(rt.tiles)/10)
	completed := 0

	for i := 0; i < len(rt.tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		completed++
		stats.Add(result.Stats)
		if rt.config.OnTile != nil {
			rt.config.OnTile(result, completed, len(rt.tiles))
		}
		if completed%progressStep == 0 || completed == len(rt.tiles) {
			rt.logger.Printf("  %d/%d tiles (%.0f%%)\n", completed, len(rt.tiles),
				100*float64(completed)/float64(len(rt.tiles)))
		}
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	if renderErr != nil {
		rt.logger.Printf("Render stopped after %d/%d tiles: %v\n", completed, len(rt.tiles), renderErr)
		return nil, stats, renderErr
	}

	rt.logger.Printf("Render complete in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)
	return img, stats, nil
}
