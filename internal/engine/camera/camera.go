// Package camera provides the viewer's fixed camera.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera sits a fixed distance back from the origin looking down -Z.
// The projection follows the window aspect ratio, everything else is
// constant for the program's lifetime.
type Camera struct {
	// Offset is the translation applied to the view matrix.
	Offset mgl32.Vec3

	// Vertical field of view in degrees and the clip planes.
	FOVDegrees float32
	Near       float32
	Far        float32
}

// New returns the camera used by the viewer: three units back from the
// cube with a 45 degree vertical field of view.
func New() *Camera {
	return &Camera{
		Offset:     mgl32.Vec3{0, 0, -3},
		FOVDegrees: 45,
		Near:       0.1,
		Far:        100,
	}
}

// ViewMatrix returns the view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.Offset.X(), c.Offset.Y(), c.Offset.Z())
}

// ProjectionMatrix returns the perspective projection for the given
// framebuffer aspect ratio (width / height).
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOVDegrees), aspect, c.Near, c.Far)
}
