package renderer

import (
	"math"

	"github.com/rsraytracer/go-raytracer/pkg/core"
)

// Camera maps normalized image-plane coordinates to world-space rays. The
// derived viewport basis is recomputed eagerly on every mutation, so a camera
// is effectively immutable during a render pass and safe to share across
// render workers.
type Camera struct {
	lookFrom core.Vec3
	lookAt   core.Vec3
	up       core.Vec3
	vfov     float64 // vertical field of view in degrees
	aspect   float64 // width / height

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from an eye position, a look-at point, an up
// vector, a vertical field of view in degrees, and the image aspect ratio.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspectRatio float64) *Camera {
	c := &Camera{
		lookFrom: lookFrom,
		lookAt:   lookAt,
		up:       up,
		vfov:     vfovDegrees,
		aspect:   aspectRatio,
	}
	c.recompute()
	return c
}

// SetLookFrom moves the eye position
func (c *Camera) SetLookFrom(lookFrom core.Vec3) {
	c.lookFrom = lookFrom
	c.recompute()
}

// SetLookAt retargets the camera
func (c *Camera) SetLookAt(lookAt core.Vec3) {
	c.lookAt = lookAt
	c.recompute()
}

// SetVFov changes the vertical field of view in degrees
func (c *Camera) SetVFov(vfovDegrees float64) {
	c.vfov = vfovDegrees
	c.recompute()
}

// recompute derives the viewport basis from the framing parameters
func (c *Camera) recompute() {
	theta := c.vfov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := c.aspect * viewportHeight

	w := c.lookFrom.Subtract(c.lookAt).Normalize()
	u := c.up.Cross(w).Normalize()
	v := w.Cross(u)

	c.origin = c.lookFrom
	c.horizontal = u.Multiply(viewportWidth)
	c.vertical = v.Multiply(viewportHeight)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(w)
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1,
// with (0,0) at the lower left corner of the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
