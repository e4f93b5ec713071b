package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewMetal creates a new metal material.
// fuzz is stored as given and clamped to [0, 1] at scatter time.
func NewMetal(albedo core.Color, fuzz float64) Material {
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// EffectiveFuzz returns the fuzz actually applied when scattering
func (m Material) EffectiveFuzz() float64 {
	return max(0, min(1, m.Fuzz))
}

func scatterMetal(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Perturb the mirror direction
	if fuzz := m.EffectiveFuzz(); fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Fuzz can push the reflection below the surface
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
