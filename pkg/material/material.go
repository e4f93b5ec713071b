package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind selects the scattering law of a Material
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a closed set of surface scattering laws.
// Only the fields relevant to Kind are meaningful. Materials are plain values
// and are never mutated once added to a world.
type Material struct {
	Kind            Kind
	Albedo          core.Color // Lambertian and Metal
	Fuzz            float64    // Metal, clamped to [0, 1] when scattering
	RefractiveIndex float64    // Dielectric
}

// Scatter computes how rayIn is redirected at hit.
// It returns false when the material absorbs the ray.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m, hit, sampler)
	case KindMetal:
		return scatterMetal(m, rayIn, hit, sampler)
	case KindDielectric:
		return scatterDielectric(m, rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Validate reports parameter errors that would make the material meaningless
func (m Material) Validate() error {
	switch m.Kind {
	case KindLambertian, KindMetal:
		if m.Albedo.X < 0 || m.Albedo.Y < 0 || m.Albedo.Z < 0 {
			return fmt.Errorf("%s albedo must be non-negative, got %v", m.Kind, m.Albedo)
		}
	case KindDielectric:
		if m.RefractiveIndex <= 0 {
			return fmt.Errorf("dielectric refractive index must be positive, got %g", m.RefractiveIndex)
		}
	default:
		return fmt.Errorf("unknown material kind %d", int(m.Kind))
	}
	return nil
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
