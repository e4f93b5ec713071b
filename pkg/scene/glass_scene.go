package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Refractive indices shown left to right in the glass scene
var glassIndices = []float64{
	1.0,  // Vacuum, the sphere vanishes
	1.33, // Water
	1.5,  // Window glass
	2.42, // Diamond
}

// NewGlassScene creates a row of dielectric spheres of increasing refractive index
// in front of colored diffuse spheres, plus a thin glass bubble
func NewGlassScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 1.5, 7),
		LookAt:        core.NewVec3(0, 0.6, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0,
	}

	samplingConfig := renderer.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}

	b := geometry.NewWorldBuilder()
	addGround(b, 0, 1000, core.NewVec3(0.6, 0.6, 0.55))

	const radius = 0.6
	for i, ir := range glassIndices {
		x := (float64(i) - float64(len(glassIndices)-1)/2) * 1.5
		glass := b.AddMaterial(material.NewDielectric(ir))
		b.AddSphere(core.NewVec3(x, radius, 0), radius, glass)

		// Backdrop sphere to look at through the glass
		hue := float64(i) / float64(len(glassIndices)) * 360.0
		backdrop := b.AddMaterial(material.NewLambertian(oklchToRGB(0.6, 0.15, hue)))
		b.AddSphere(core.NewVec3(x, 0.4, -2.5), 0.4, backdrop)
	}

	// Soap-bubble: outer and inverted inner shell of the same glass
	bubble := b.AddMaterial(material.NewDielectric(1.5))
	b.AddSphere(core.NewVec3(0, 2.1, 0.8), 0.5, bubble)
	b.AddSphere(core.NewVec3(0, 2.1, 0.8), -0.48, bubble)

	return finish(b, cameraConfig, samplingConfig, opts)
}
