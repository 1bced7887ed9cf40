// Package renderer drives per-pixel multi-sampling, recursive light
// transport, and tone-mapped read-out of the accumulated radiance buffer.
package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rsraytracer/go-raytracer/pkg/core"
	"github.com/rsraytracer/go-raytracer/pkg/material"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// tMinHit offsets intersection tests away from the ray origin to avoid
// self-intersection ("shadow acne") from floating round-off.
const tMinHit = 0.001

// Scene is the world the renderer resolves rays against
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	Material(id core.MaterialID) *material.Material
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of jittered rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel row workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-row random generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Total primary rays traced
	Elapsed      time.Duration // Wall time of the pass
}

// Renderer renders a scene into its pixel buffer. A pass is synchronous:
// Render returns only once every pixel has its full sample count, and the
// buffer can be read for preview or export between passes.
type Renderer struct {
	width, height int
	config        SamplingConfig
	buffer        *PixelBuffer
	logger        core.Logger
}

// NewRenderer creates a renderer with a fixed-size pixel buffer. The buffer
// starts out holding the gradient placeholder until the first pass.
func NewRenderer(width, height int, config SamplingConfig, logger core.Logger) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		config: config,
		buffer: NewPixelBuffer(width, height),
		logger: logger,
	}
}

// Buffer returns the renderer's pixel buffer for preview and export
func (rt *Renderer) Buffer() *PixelBuffer {
	return rt.buffer
}

// Render runs one full pass over every pixel and returns its statistics.
// The scene and camera are read-only for the duration of the pass.
func (rt *Renderer) Render(sc Scene, camera *Camera) RenderStats {
	start := time.Now()
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel)

	rt.buffer.Reset(rt.config.SamplesPerPixel)
	rt.renderRows(sc, camera)

	stats := RenderStats{
		TotalPixels:  rt.width * rt.height,
		TotalSamples: rt.width * rt.height * rt.config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	rt.logger.Printf("Render complete in %v (%d rays)\n", stats.Elapsed, stats.TotalSamples)
	return stats
}

// renderRow accumulates all samples for one pixel row. Each row owns a
// distinct set of buffer slots, so rows render concurrently without locking.
func (rt *Renderer) renderRow(sc Scene, camera *Camera, y int, random *rand.Rand) {
	// Guard the denominators for degenerate 1-pixel axes
	uScale := float64(max(1, rt.width-1))
	vScale := float64(max(1, rt.height-1))

	for x := 0; x < rt.width; x++ {
		sum := core.Vec3{}
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			u := (float64(x) + random.Float64()) / uScale
			// Row 0 is the top of the frame, so the vertical axis is flipped
			v := 1.0 - (float64(y)+random.Float64())/vScale

			ray := camera.GetRay(u, v)
			sum = sum.Add(rt.rayColor(ray, sc, random, rt.config.MaxDepth))
		}
		rt.buffer.SetSampleSum(x, y, sum)
	}
}

// rayColor resolves the radiance carried by a ray, recursing through
// material scatter events until the bounce budget is exhausted.
func (rt *Renderer) rayColor(ray core.Ray, sc Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := sc.Hit(ray, tMinHit, math.Inf(1))
	if !isHit {
		return backgroundGradient(sc, ray)
	}

	scatter, didScatter := sc.Material(hit.Material).Scatter(ray, hit, random)
	if !didScatter {
		return core.Vec3{} // absorbed
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, sc, random, depth-1))
}

// backgroundGradient returns the procedural sky color for a ray that escaped
// the scene: a vertical lerp between the bottom and top colors.
func backgroundGradient(sc Scene, ray core.Ray) core.Vec3 {
	topColor, bottomColor := sc.BackgroundColors()

	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
