// Package scene owns the collections of spheres and materials and answers
// nearest-hit queries for the integrator. Materials live in an arena indexed
// by core.MaterialID so many spheres can share one material without any
// shared-ownership bookkeeping.
package scene

import (
	"fmt"

	"github.com/rsraytracer/go-raytracer/pkg/core"
	"github.com/rsraytracer/go-raytracer/pkg/geometry"
	"github.com/rsraytracer/go-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is read-only for
// the duration of a render pass and safe to share across render workers.
type Scene struct {
	spheres   []geometry.Sphere
	materials []material.Material

	// Sky gradient: bottom at the horizon, top straight up
	skyTop    core.Vec3
	skyBottom core.Vec3
}

// NewScene creates an empty scene. Index 0 of the material arena is reserved
// for a default mid-gray Lambertian so an uninitialized MaterialID always
// resolves to a valid material.
func NewScene() *Scene {
	return &Scene{
		materials: []material.Material{
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		},
		skyTop:    core.NewVec3(0.5, 0.7, 1.0),
		skyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// AddMaterial appends a material to the arena and returns its handle
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.materials = append(s.materials, m)
	return core.MaterialID(len(s.materials) - 1)
}

// AddSphere appends a sphere referencing a previously added material.
// A zero radius is degenerate geometry and rejected up front. A negative
// radius is accepted (inside-out sphere).
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialID core.MaterialID) error {
	if radius == 0 {
		return fmt.Errorf("sphere at %v has zero radius", center)
	}
	if materialID < 0 || int(materialID) >= len(s.materials) {
		return fmt.Errorf("sphere at %v references unknown material %d", center, materialID)
	}
	s.spheres = append(s.spheres, geometry.NewSphere(center, radius, materialID))
	return nil
}

// Material resolves a material handle against the arena
func (s *Scene) Material(id core.MaterialID) *material.Material {
	return &s.materials[id]
}

// SphereCount returns the number of spheres in the scene
func (s *Scene) SphereCount() int {
	return len(s.spheres)
}

// Hit returns the closest intersection across all objects in [tMin, tMax].
// Linear scan with a shrinking upper bound: each object only needs to beat
// the current best, so ties go to the first-found smallest t regardless of
// insertion order.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for i := range s.spheres {
		if hit, isHit := s.spheres[i].Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BackgroundColors returns the sky gradient colors (top, bottom)
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.skyTop, s.skyBottom
}
