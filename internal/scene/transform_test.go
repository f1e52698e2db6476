package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func TestModelMatrixAtZero(t *testing.T) {
	m := ModelMatrix(0)
	if !m.ApproxEqualThreshold(mgl32.Ident4(), epsilon) {
		t.Errorf("ModelMatrix(0) should be identity, got %v", m)
	}
}

func TestModelMatrixRotates(t *testing.T) {
	m0 := ModelMatrix(0)
	m1 := ModelMatrix(1)

	if m0.ApproxEqualThreshold(m1, epsilon) {
		t.Error("model matrix should change with elapsed time")
	}

	// One second is one radian around (0.5, 1, 0), unnormalized.
	want := mgl32.HomogRotate3D(1, mgl32.Vec3{0.5, 1.0, 0.0})
	if !m1.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("ModelMatrix(1): got %v, want %v", m1, want)
	}
}

func TestEmittedPositionFullChain(t *testing.T) {
	model := ModelMatrix(2.5)
	view := mgl32.Translate3D(0, 0, -3)
	projection := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	vertex := mgl32.Vec4{0.5, -0.5, 0.5, 1}

	for _, s := range []Space{WorldSpace, ViewSpace, ClipSpace} {
		got := EmittedPosition(s, model, view, projection, vertex)
		want := projection.Mul4(view).Mul4(model).Mul4x1(vertex)
		if !got.ApproxEqualThreshold(want, epsilon) {
			t.Errorf("%s: got %v, want %v", s.Label(), got, want)
		}
	}
}

func TestEmittedPositionModelSpaceSkipsModel(t *testing.T) {
	model := ModelMatrix(2.5)
	view := mgl32.Translate3D(0, 0, -3)
	projection := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	vertex := mgl32.Vec4{0.5, -0.5, 0.5, 1}

	got := EmittedPosition(ModelSpace, model, view, projection, vertex)
	want := projection.Mul4(view).Mul4x1(vertex)
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("model space: got %v, want %v", got, want)
	}

	full := projection.Mul4(view).Mul4(model).Mul4x1(vertex)
	if got.ApproxEqualThreshold(full, epsilon) {
		t.Error("model space must not apply the model matrix")
	}
}

func TestEmittedPositionModelSpaceTimeIndependent(t *testing.T) {
	// The silhouette freezes in model space: the emitted position must
	// not depend on how far the rotation has advanced.
	view := mgl32.Translate3D(0, 0, -3)
	projection := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	vertex := mgl32.Vec4{-0.5, 0.5, -0.5, 1}

	early := EmittedPosition(ModelSpace, ModelMatrix(0.1), view, projection, vertex)
	late := EmittedPosition(ModelSpace, ModelMatrix(42), view, projection, vertex)

	if !early.ApproxEqualThreshold(late, epsilon) {
		t.Errorf("model space position moved with time: %v vs %v", early, late)
	}
}

func TestEmittedPositionRotatingSpacesTrackTime(t *testing.T) {
	view := mgl32.Translate3D(0, 0, -3)
	projection := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	vertex := mgl32.Vec4{-0.5, 0.5, -0.5, 1}

	early := EmittedPosition(WorldSpace, ModelMatrix(0.1), view, projection, vertex)
	late := EmittedPosition(WorldSpace, ModelMatrix(42), view, projection, vertex)

	if early.ApproxEqualThreshold(late, epsilon) {
		t.Error("world space position should track the rotation")
	}
}
