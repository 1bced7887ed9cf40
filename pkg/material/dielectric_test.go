package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

func TestDielectric_Scatter_UnityIORPassesThrough(t *testing.T) {
	// With ior=1 the refraction ratio is 1 and a head-on ray passes through
	// undeviated with no attenuation.
	m := NewDielectric(1.0)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))
	random := rand.New(rand.NewSource(42))

	scatter, didScatter := m.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Dielectric must always scatter")
	}
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected attenuation (1,1,1), got %v", scatter.Attenuation)
	}

	expected := rayIn.Direction.Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected undeviated direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestDielectric_Scatter_TotalInternalReflection(t *testing.T) {
	// Exiting glass at 45°: sin(45°)*1.5 > 1, so refraction is impossible
	// and the ray must reflect regardless of the random stream.
	m := NewDielectric(1.5)
	hit := testHit(core.NewVec3(0, 1, 0), false) // back face: exiting the medium
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	expected := core.NewVec3(1, 1, 0).Normalize()
	for seed := int64(0); seed < 20; seed++ {
		scatter, didScatter := m.Scatter(rayIn, hit, rand.New(rand.NewSource(seed)))
		if !didScatter {
			t.Fatal("Dielectric must always scatter")
		}
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
		}
	}
}

func TestDielectric_Scatter_EnteringRefractsTowardNormal(t *testing.T) {
	// Entering glass head-on: reflectance is R0, so draws above R0 refract
	// straight through.
	m := NewDielectric(1.5)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	random := rand.New(rand.NewSource(42))

	refracted := 0
	expected := core.NewVec3(0, 0, -1)
	for i := 0; i < 1000; i++ {
		scatter, _ := m.Scatter(rayIn, hit, random)
		if scatter.Scattered.Direction.Subtract(expected).Length() < 1e-9 {
			refracted++
		}
	}

	// R0 = ((1-1.5)/(1+1.5))² = 0.04, so ~96% of draws refract
	if refracted < 900 {
		t.Errorf("Expected the vast majority of head-on rays to refract, got %d/1000", refracted)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	ratio := 1.0 / 1.5
	r0 := math.Pow((1-ratio)/(1+ratio), 2)

	// Normal incidence returns exactly R0
	if got := Reflectance(1.0, ratio); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Expected R0=%f at normal incidence, got %f", r0, got)
	}

	// Reflectance grows monotonically as the incidence angle increases
	// (cosine decreases toward 0)
	cosines := []float64{1.0, 0.8, 0.6, 0.4, 0.2, 0.0}
	for i := 0; i < len(cosines)-1; i++ {
		lower := Reflectance(cosines[i], ratio)
		higher := Reflectance(cosines[i+1], ratio)
		if higher <= lower {
			t.Errorf("Expected R(%f)=%f > R(%f)=%f", cosines[i+1], higher, cosines[i], lower)
		}
	}

	// Grazing incidence approaches full reflection
	if got := Reflectance(0.0, ratio); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", got)
	}
}
