package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()

	b := NewWorldBuilder()
	red := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1)))
	mirror := b.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))
	b.AddSphere(core.NewVec3(0, 0, -1), 0.5, red)
	b.AddSphere(core.NewVec3(0, 0, -3), 0.5, mirror)
	b.AddSphere(core.NewVec3(0, -100.5, -1), 100, red)

	world, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return world
}

func TestWorld_HitClosest(t *testing.T) {
	world := newTestWorld(t)

	// Looking down -z the near sphere occludes the far one
	hit, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=0.5, got %f", hit.T)
	}
	if hit.Material != 0 {
		t.Errorf("Expected material 0, got %d", hit.Material)
	}

	// From behind, the far sphere is now closest
	hit, isHit = world.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
	}
	if hit.Material != 1 {
		t.Errorf("Expected material 1, got %d", hit.Material)
	}
}

func TestWorld_HitMiss(t *testing.T) {
	world := newTestWorld(t)

	// Straight up, away from every sphere
	_, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, math.Inf(1))
	if isHit {
		t.Error("Expected miss for a ray pointing away from every sphere")
	}
}

func TestWorld_HitTieKeepsFirst(t *testing.T) {
	b := NewWorldBuilder()
	first := b.AddMaterial(material.NewLambertian(core.NewVec3(1, 0, 0)))
	second := b.AddMaterial(material.NewLambertian(core.NewVec3(0, 1, 0)))
	b.AddSphere(core.NewVec3(0, 0, -2), 1, first)
	b.AddSphere(core.NewVec3(0, 0, -2), 1, second)
	world, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	hit, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != first {
		t.Errorf("Coincident surfaces should resolve to the first sphere, got material %d", hit.Material)
	}
}

func TestWorld_SharedMaterial(t *testing.T) {
	b := NewWorldBuilder()
	shared := b.AddMaterial(material.NewDielectric(1.5))
	for i := 0; i < 5; i++ {
		b.AddSphere(core.NewVec3(float64(i), 0, 0), 0.25, shared)
	}
	world, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if world.Len() != 5 {
		t.Errorf("Expected 5 spheres, got %d", world.Len())
	}
	if world.MaterialCount() != 1 {
		t.Errorf("Expected 1 material, got %d", world.MaterialCount())
	}
	for i := 0; i < world.Len(); i++ {
		if world.Sphere(i).Material != shared {
			t.Errorf("Sphere %d should use the shared material", i)
		}
	}
	if world.Material(shared).RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %f", world.Material(shared).RefractiveIndex)
	}
}

func TestWorldBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *WorldBuilder)
		want  error
	}{
		{
			name: "unknown material",
			build: func(b *WorldBuilder) {
				b.AddSphere(core.NewVec3(0, 0, 0), 1, material.ID(3))
			},
			want: ErrUnknownMaterial,
		},
		{
			name: "zero radius",
			build: func(b *WorldBuilder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddSphere(core.NewVec3(0, 0, 0), 0, m)
			},
			want: ErrInvalidRadius,
		},
		{
			name: "infinite radius",
			build: func(b *WorldBuilder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddSphere(core.NewVec3(0, 0, 0), math.Inf(1), m)
			},
			want: ErrInvalidRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewWorldBuilder()
			tt.build(b)
			world, err := b.Build()
			if world != nil {
				t.Error("Expected nil world on error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWorldBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewWorldBuilder()
	m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	b.AddSphere(core.NewVec3(0, 0, -1), 0.5, m)

	world, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	b.AddSphere(core.NewVec3(0, 0, -2), 0.5, m)
	if world.Len() != 1 {
		t.Errorf("Built world should not see later additions, got %d spheres", world.Len())
	}
}
