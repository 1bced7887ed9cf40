package scene

import (
	"github.com/rsraytracer/go-raytracer/pkg/core"
	"github.com/rsraytracer/go-raytracer/pkg/material"
)

// NewDefaultScene creates the classic four-sphere scene: a large diffuse
// ground sphere, a diffuse center sphere, a hollow glass sphere on the left
// (outer shell plus inner negative-radius shell) and a fuzzy metal sphere on
// the right.
func NewDefaultScene() *Scene {
	s := NewScene()

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1))

	// Scene construction cannot fail here: all radii are non-zero and all
	// handles come from AddMaterial above.
	_ = s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	_ = s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	_ = s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	_ = s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)
	_ = s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metal)

	return s
}

// NewSingleSphereScene creates a minimal scene with one diffuse sphere in
// front of the camera, useful for smoke tests.
func NewSingleSphereScene() *Scene {
	s := NewScene()
	gray := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	_ = s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	return s
}
