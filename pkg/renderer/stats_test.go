package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderStats_Summary(t *testing.T) {
	stats := RenderStats{
		TotalPixels:     90000,
		TotalSamples:    9000000,
		SamplesPerPixel: 100,
		Bands:           29,
		Workers:         8,
		Duration:        1500 * time.Millisecond,
	}

	summary := stats.Summary()
	for _, want := range []string{"90,000 pixels", "9,000,000 samples", "100 per pixel", "1.5s", "8 workers", "29 bands"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary %q should contain %q", summary, want)
		}
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 500, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 250 {
		t.Errorf("Expected 250 samples/s, got %f", got)
	}

	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 without a duration, got %f", got)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	total := RenderStats{SamplesPerPixel: 4}
	total.merge(RenderStats{TotalPixels: 10, TotalSamples: 40})
	total.merge(RenderStats{TotalPixels: 5, TotalSamples: 20})

	if total.TotalPixels != 15 || total.TotalSamples != 60 {
		t.Errorf("Unexpected merged stats %+v", total)
	}
	if total.SamplesPerPixel != 4 {
		t.Errorf("Merge should keep frame level fields, got %+v", total)
	}
}
