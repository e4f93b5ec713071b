package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Grid extent of the small spheres, in each direction from the origin
const randomGridHalfSize = 11

// NewRandomScene creates a field of small random spheres around three large ones.
// The layout depends only on opts.Seed.
func NewRandomScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	samplingConfig := renderer.SamplingConfig{
		Width:           600,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	sampler := core.NewSeededSampler(opts.Seed)
	b := geometry.NewWorldBuilder()

	addGround(b, 0, 1000, core.NewVec3(0.5, 0.5, 0.5))

	// Small spheres stay clear of the large metal sphere
	clearing := core.NewVec3(4, 0.2, 0)
	glass := b.AddMaterial(material.NewDielectric(1.5))

	for a := -randomGridHalfSize; a < randomGridHalfSize; a++ {
		for c := -randomGridHalfSize; c < randomGridHalfSize; c++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(c)+0.9*sampler.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				b.AddSphere(center, 0.2, b.AddMaterial(material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3InRange(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				b.AddSphere(center, 0.2, b.AddMaterial(material.NewMetal(albedo, fuzz)))
			default:
				b.AddSphere(center, 0.2, glass)
			}
		}
	}

	b.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	b.AddSphere(core.NewVec3(-4, 1, 0), 1.0, b.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	b.AddSphere(core.NewVec3(4, 1, 0), 1.0, b.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return finish(b, cameraConfig, samplingConfig, opts)
}
