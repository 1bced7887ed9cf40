// Package material implements the scattering models consumed by the
// integrator. The material set is a closed tagged variant rather than an
// interface: spheres reference materials by handle, and a single Scatter
// dispatch switches on the kind, so no per-material heap allocation or
// virtual dispatch happens on the hot path.
package material

import (
	"math/rand"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

// Kind identifies the scattering model of a material
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material is an immutable tagged variant over the supported scattering
// models. Only the fields relevant to the Kind are meaningful.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian, Metal
	Fuzz            float64   // Metal: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64   // Dielectric
}

// ScatterResult holds the outcome of a successful scatter event
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing bounced ray
	Attenuation core.Vec3 // Per-channel fraction of light retained
}

// Scatter redirects an incoming ray at a surface hit. The boolean is false
// when the ray is absorbed and contributes no further light.
func (m *Material) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	default:
		return m.scatterLambertian(rayIn, hit, random)
	}
}
