package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Vector %v has length %f, expected 1", v, v.Length())
		}
	}
}

func TestRandomUnitVector_Deterministic(t *testing.T) {
	a := RandomUnitVector(rand.New(rand.NewSource(7)))
	b := RandomUnitVector(rand.New(rand.NewSource(7)))

	if a != b {
		t.Errorf("Same seed produced different vectors: %v vs %v", a, b)
	}
}
