package material

import (
	"math/rand"
	"testing"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

func testHit(normal core.Vec3, frontFace bool) *core.HitRecord {
	return &core.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    normal,
		T:         1.0,
		FrontFace: frontFace,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.1)
	m := NewLambertian(albedo)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := m.Scatter(rayIn, hit, random)

		if !didScatter {
			t.Fatal("Lambertian must always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray origin at hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scatter direction must never be degenerate")
		}
		// direction = normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scatter direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_ScatterDirectionDistribution(t *testing.T) {
	// The scatter direction is normal + random unit vector, so it must stay
	// within one unit of the normal.
	m := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := testHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		scatter, _ := m.Scatter(rayIn, hit, random)
		offset := scatter.Scattered.Direction.Subtract(hit.Normal).Length()
		if offset > 1.0+1e-9 {
			t.Fatalf("Scatter direction %v is more than a unit away from the normal", scatter.Scattered.Direction)
		}
	}
}
