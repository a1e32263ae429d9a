package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// maxChannel keeps floor(256*v) inside a byte
const maxChannel = 0.999

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders pixels within bounds into img.
// Only pixels inside bounds are written, so tiles with disjoint bounds can
// share img without locking.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA, random *rand.Rand) RenderStats {
	samples := tr.scene.SamplingConfig.SamplesPerPixel
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := tr.samplePixel(x, y, samples, random)
			img.SetRGBA(x, y, ToRGBA(sum, samples))
			stats.TotalSamples += samples
		}
	}

	stats.finalize()
	return stats
}

// samplePixel sums the estimator over jittered camera rays through pixel (x, y).
// Row 0 is the top of the image, while t grows upward in camera space.
func (tr *TileRenderer) samplePixel(x, y, samples int, random *rand.Rand) core.Vec3 {
	width := tr.scene.SamplingConfig.Width
	height := tr.scene.SamplingConfig.Height
	sDenom := float32(max(width-1, 1))
	tDenom := float32(max(height-1, 1))

	var sum core.Vec3
	for i := 0; i < samples; i++ {
		s := (float32(x) + random.Float32()) / sDenom
		t := (float32(height-1-y) + random.Float32()) / tDenom

		ray := tr.scene.Camera.GetRay(s, t, random)
		sum = sum.Add(tr.integrator.RayColor(ray, tr.scene.World, random))
	}
	return sum
}

// ToRGBA averages a sample sum, applies gamma 2 and quantizes to 8 bits per channel.
// NaN channels become 0.
func ToRGBA(sum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float32(samples)
	return color.RGBA{
		R: quantize(sum.X() * scale),
		G: quantize(sum.Y() * scale),
		B: quantize(sum.Z() * scale),
		A: 255,
	}
}

func quantize(linear float32) uint8 {
	v := math32.Sqrt(linear)
	if math32.IsNaN(v) {
		v = 0
	}
	v = math32.Min(math32.Max(v, 0), maxChannel)
	return uint8(math32.Floor(256 * v))
}
