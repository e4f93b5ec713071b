package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidDimensions is returned when a render is requested with non-positive sizes or counts
var ErrInvalidDimensions = errors.New("invalid render dimensions")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate checks that the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidDimensions, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidDimensions, c.MaxDepth)
	}
	return nil
}

// ParallelConfig controls how a frame is split across workers
type ParallelConfig struct {
	NumWorkers  int   // Number of parallel workers (0 = use CPU count)
	RowsPerBand int   // Scanlines per band
	Seed        int64 // Base seed, band i draws from Seed+i
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		NumWorkers:  0,
		RowsPerBand: 8,
		Seed:        42,
	}
}

// Raytracer drives the per-pixel sampling of a frame
type Raytracer struct {
	world      integrator.World
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	parallel   ParallelConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. world and camera are only read during rendering.
func NewRaytracer(world integrator.World, camera *Camera, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(),
		config:     config,
		parallel:   DefaultParallelConfig(),
		logger:     logger,
	}
}

// SetParallelConfig updates the work partitioning configuration
func (rt *Raytracer) SetParallelConfig(config ParallelConfig) {
	rt.parallel = config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render samples every pixel of the frame in parallel and returns the accumulated sums.
// The result is identical for a given seed regardless of the number of workers.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	bands := fb.Bands(rt.parallel.RowsPerBand)

	pool := NewWorkerPool(rt, rt.parallel.NumWorkers, len(bands))
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (%d bands, %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, len(bands), pool.GetNumWorkers())

	pool.Start()
	for _, band := range bands {
		pool.SubmitTask(BandTask{
			Band:    band,
			TaskID:  band.Index,
			Sampler: core.NewSeededSampler(rt.parallel.Seed + int64(band.Index)),
		})
	}

	// Wait for every band before the framebuffer is handed back
	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Bands:           len(bands),
		Workers:         pool.GetNumWorkers(),
	}
	var errs []error
	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			errs = append(errs, fmt.Errorf("worker pool closed unexpectedly"))
			break
		}
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	if len(errs) > 0 {
		return nil, RenderStats{}, errors.Join(errs...)
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed: %s\n", stats.Summary())
	return fb, stats, nil
}

// RenderBand renders every pixel of band sequentially using sampler
func (rt *Raytracer) RenderBand(band Band, sampler core.Sampler) RenderStats {
	width, height := rt.config.Width, rt.config.Height

	// A single row or column maps to coordinate 0 instead of dividing by zero
	sScale := float64(max(1, width-1))
	tScale := float64(max(1, height-1))

	stats := RenderStats{}
	for y := band.MinY; y < band.MaxY; y++ {
		// Camera t grows upwards, framebuffer rows grow downwards
		j := height - 1 - y
		for i := 0; i < width; i++ {
			sum := core.Vec3{}
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				s := (float64(i) + sampler.Get1D()) / sScale
				t := (float64(j) + sampler.Get1D()) / tScale
				ray := rt.camera.GetRay(s, t, sampler)
				sum = sum.Add(rt.integrator.RayColor(ray, rt.world, rt.config.MaxDepth, sampler))
			}
			band.Add(i, y, sum)
			stats.TotalPixels++
			stats.TotalSamples += rt.config.SamplesPerPixel
		}
	}
	return stats
}

// Render renders world through camera and returns the row-major per-pixel sums of
// samplesPerPixel radiance estimates, row 0 at the top of the image
func Render(world integrator.World, camera *Camera, width, height, samplesPerPixel, maxDepth int) ([]core.Color, error) {
	rt := NewRaytracer(world, camera, SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	}, nil)

	fb, _, err := rt.Render()
	if err != nil {
		return nil, err
	}
	return fb.Pixels(), nil
}
