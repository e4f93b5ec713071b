package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrUnknownMaterial is returned when a sphere references a material that was never added
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrInvalidRadius is returned for zero or non-finite sphere radii
	ErrInvalidRadius = errors.New("invalid sphere radius")
)

// World is an immutable, ordered collection of spheres and the materials they share.
// A World is only created by WorldBuilder.Build and is safe for concurrent reads.
type World struct {
	spheres   []Sphere
	materials []material.Material
}

// Hit returns the closest intersection with any sphere in [tMin, tMax].
// Among equal t the first sphere in insertion order wins.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for i := range w.spheres {
		if hit, isHit := w.spheres[i].Hit(ray, tMin, closestSoFar); isHit {
			// Strictly closer only, so ties keep the earlier sphere
			if hitAnything && hit.T >= closestSoFar {
				continue
			}
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Material resolves a material handle. Handles come from the builder that produced the world.
func (w *World) Material(id material.ID) material.Material {
	return w.materials[id]
}

// Len returns the number of spheres in the world
func (w *World) Len() int {
	return len(w.spheres)
}

// MaterialCount returns the number of distinct materials in the world
func (w *World) MaterialCount() int {
	return len(w.materials)
}

// Sphere returns the i-th sphere by value
func (w *World) Sphere(i int) Sphere {
	return w.spheres[i]
}

// WorldBuilder accumulates materials and spheres before freezing them into a World
type WorldBuilder struct {
	spheres   []Sphere
	materials []material.Material
	errs      []error
}

// NewWorldBuilder creates an empty builder
func NewWorldBuilder() *WorldBuilder {
	return &WorldBuilder{}
}

// AddMaterial stores a material and returns its handle.
// Spheres that share a handle share the material.
func (b *WorldBuilder) AddMaterial(m material.Material) material.ID {
	if err := m.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("material %d: %w", len(b.materials), err))
	}
	b.materials = append(b.materials, m)
	return material.ID(len(b.materials) - 1)
}

// AddSphere appends a sphere. A negative radius is allowed and turns the
// outward normal inwards, which is how hollow glass shells are modelled.
func (b *WorldBuilder) AddSphere(center core.Point3, radius float64, mat material.ID) *WorldBuilder {
	index := len(b.spheres)
	if radius == 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		b.errs = append(b.errs, fmt.Errorf("sphere %d: %w: %g", index, ErrInvalidRadius, radius))
	}
	if mat < 0 || int(mat) >= len(b.materials) {
		b.errs = append(b.errs, fmt.Errorf("sphere %d: %w: %d", index, ErrUnknownMaterial, mat))
	}
	b.spheres = append(b.spheres, NewSphere(center, radius, mat))
	return b
}

// Build freezes the builder's contents into a World.
// The builder may keep being used; later additions do not affect the returned World.
func (b *WorldBuilder) Build() (*World, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	return &World{
		spheres:   append([]Sphere(nil), b.spheres...),
		materials: append([]material.Material(nil), b.materials...),
	}, nil
}
