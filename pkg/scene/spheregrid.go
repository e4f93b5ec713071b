package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewMetalsScene creates a grid of metal spheres: fuzz grows along x and hue along z
func NewMetalsScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 5, 9),
		LookAt:        core.NewVec3(0, 0.4, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          35.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}

	samplingConfig := renderer.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        40,
	}

	b := geometry.NewWorldBuilder()
	addGround(b, 0, 1000, core.NewVec3(0.5, 0.5, 0.5))

	const (
		columns   = 5
		rows      = 3
		spacing   = 1.6
		radius    = 0.6
		lightness = 0.7
		chroma    = 0.15
	)

	for i := 0; i < columns; i++ {
		// 0, 0.25, ... 1: a fully fuzzy metal at the right edge
		fuzz := float64(i) / float64(columns-1)
		for j := 0; j < rows; j++ {
			hue := float64(j) / float64(rows) * 360.0
			metal := b.AddMaterial(material.NewMetal(oklchToRGB(lightness, chroma, hue), fuzz))

			x := (float64(i) - float64(columns-1)/2) * spacing
			z := -(float64(j) - float64(rows-1)/2) * spacing
			b.AddSphere(core.NewVec3(x, radius, z), radius, metal)
		}
	}

	return finish(b, cameraConfig, samplingConfig, opts)
}
