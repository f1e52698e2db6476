package scene

import "github.com/go-gl/mathgl/mgl32"

// rotationAxis is the cube's rotation axis. Deliberately not
// normalized: HomogRotate3D feeds it straight into the rotation
// formula and the reference visual depends on that.
var rotationAxis = mgl32.Vec3{0.5, 1.0, 0.0}

// ModelMatrix returns the model transform after the given number of
// elapsed seconds. One second of wall time is one radian of rotation.
func ModelMatrix(elapsed float64) mgl32.Mat4 {
	return mgl32.HomogRotate3D(float32(elapsed), rotationAxis)
}

// EmittedPosition mirrors the vertex shader's output position for a
// vertex in the given space: model space skips the model matrix
// entirely, every other space applies the full chain.
func EmittedPosition(s Space, model, view, projection mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	if !s.AppliesModel() {
		return projection.Mul4(view).Mul4x1(v)
	}
	return projection.Mul4(view).Mul4(model).Mul4x1(v)
}
