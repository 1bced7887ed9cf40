package material

import (
	"math/rand"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material with the given albedo
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian bounces the ray in a random direction biased toward the
// surface normal. Always succeeds.
func (m *Material) scatterLambertian(_ core.Ray, hit *core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can cancel the normal almost exactly, which
	// would produce a degenerate ray. Fall back to the normal itself.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo,
	}, true
}
