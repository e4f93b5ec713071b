package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *geometry.World
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Options customise a built-in scene
type Options struct {
	Seed   int64                 // Seed for procedurally placed spheres
	Camera renderer.CameraConfig // Non-zero fields override the scene's camera
}

// NewCamera builds the camera described by the scene's camera config
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// SamplingFor returns the sampling config for an image width, deriving the
// height from the camera aspect ratio. width <= 0 keeps the scene's width.
func (s *Scene) SamplingFor(width int) renderer.SamplingConfig {
	config := s.SamplingConfig
	if width > 0 {
		config.Width = width
	}
	if s.CameraConfig.AspectRatio > 0 {
		config.Height = max(1, int(math.Round(float64(config.Width)/s.CameraConfig.AspectRatio)))
	}
	return config
}

// addGround adds a large diffuse sphere whose top touches y
func addGround(b *geometry.WorldBuilder, y, radius float64, albedo core.Color) {
	ground := b.AddMaterial(material.NewLambertian(albedo))
	b.AddSphere(core.NewVec3(0, y-radius, 0), radius, ground)
}

// finish freezes the builder and applies camera overrides
func finish(b *geometry.WorldBuilder, camera renderer.CameraConfig, sampling renderer.SamplingConfig, opts Options) (*Scene, error) {
	world, err := b.Build()
	if err != nil {
		return nil, err
	}

	cameraConfig := renderer.MergeCameraConfig(camera, opts.Camera)
	return &Scene{
		World:          world,
		CameraConfig:   cameraConfig,
		SamplingConfig: sampling,
	}, nil
}
