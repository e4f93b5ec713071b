package renderer

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for every pixel
	Bands           int           // Number of row bands dispatched
	Workers         int           // Number of worker goroutines
	Duration        time.Duration // Wall time of the render
}

// merge adds the pixel and sample counts of a single band
func (s *RenderStats) merge(band RenderStats) {
	s.TotalPixels += band.TotalPixels
	s.TotalSamples += band.TotalSamples
}

// SamplesPerSecond returns the sampling throughput, 0 if no time was recorded
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

var summaryPrinter = message.NewPrinter(language.English)

// Summary returns a human readable one-line description of the render
func (s RenderStats) Summary() string {
	return summaryPrinter.Sprintf("%d pixels, %d samples (%d per pixel) in %v using %d workers over %d bands",
		s.TotalPixels, s.TotalSamples, s.SamplesPerPixel, s.Duration.Round(time.Millisecond), s.Workers, s.Bands)
}
