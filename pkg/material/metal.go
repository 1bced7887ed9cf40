package material

import (
	"math/rand"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

// NewMetal creates a reflective material. Fuzz blurs the reflection and is
// clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// scatterMetal mirrors the ray about the surface normal, perturbed by fuzz.
// Fails when the perturbed direction points below the horizon, which absorbs
// the ray.
func (m *Material) scatterMetal(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
