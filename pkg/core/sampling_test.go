package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %f", v)
		}
		u := sampler.Get2D()
		if u.X < 0 || u.X >= 1 || u.Y < 0 || u.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", u)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if l := v.Length(); l < 1-1e-9 || l > 1+1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", l, v)
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 0).Normalize(),
	}

	for _, n := range normals {
		for i := 0; i < 500; i++ {
			p := RandomInHemisphere(n, sampler)
			if p.Dot(n) < 0 {
				t.Fatalf("Sample %v is below the hemisphere around %v", p, n)
			}
			if p.LengthSquared() >= 1.0 {
				t.Fatalf("Sample %v is outside the unit sphere", p)
			}
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample must lie in the z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}
