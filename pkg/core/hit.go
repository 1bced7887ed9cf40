package core

// MaterialID is an opaque handle into a scene's material arena. Many spheres
// may reference the same material without sharing ownership. The zero value
// resolves to the scene's reserved default material.
type MaterialID int

// HitRecord describes a ray-surface intersection
type HitRecord struct {
	Point     Vec3       // Intersection point in world space
	Normal    Vec3       // Surface normal, always facing the ray origin
	T         float64    // Parametric distance along the ray
	FrontFace bool       // True if the ray hit the outer surface
	Material  MaterialID // Handle of the material at the surface
}

// SetFaceNormal orients the normal against the incoming ray. Materials rely
// on an always-ray-facing normal to decide reflection/refraction sidedness.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
