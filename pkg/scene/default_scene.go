package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three spheres on a ground sphere: diffuse, hollow glass and metal
func NewDefaultScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(3, 3, 2),  // Above and to the right
		LookAt:        core.NewVec3(0, 0, -1), // Center sphere
		Up:            core.NewVec3(0, 1, 0),  // Standard up direction
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1, // Slight depth of field
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	samplingConfig := renderer.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	b := geometry.NewWorldBuilder()

	groundMat := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	centerMat := b.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glassMat := b.AddMaterial(material.NewDielectric(1.5))
	goldMat := b.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))

	b.AddSphere(core.NewVec3(0, -100.5, -1), 100, groundMat).
		AddSphere(core.NewVec3(0, 0, -1), 0.5, centerMat).
		AddSphere(core.NewVec3(-1, 0, -1), 0.5, glassMat).
		// Same material, negative radius: the inner wall of a glass bubble
		AddSphere(core.NewVec3(-1, 0, -1), -0.45, glassMat).
		AddSphere(core.NewVec3(1, 0, -1), 0.5, goldMat)

	return finish(b, cameraConfig, samplingConfig, opts)
}
