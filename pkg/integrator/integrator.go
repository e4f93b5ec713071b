package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is the read-only scene view an integrator needs
type World interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
	Material(id material.ID) material.Material
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, world World, depth int, sampler core.Sampler) core.Color
}
