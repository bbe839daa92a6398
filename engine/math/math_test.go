package math

import (
	gomath "math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if a.Add(b) != NewVec3(5, 7, 9) {
		t.Fatalf("add %+v", a.Add(b))
	}
	if b.Sub(a) != NewVec3(3, 3, 3) {
		t.Fatalf("sub %+v", b.Sub(a))
	}
	if a.MulScalar(2) != NewVec3(2, 4, 6) {
		t.Fatalf("mul %+v", a.MulScalar(2))
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("dot %g", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if x.Cross(y) != NewVec3(0, 0, 1) {
		t.Fatalf("cross %+v", x.Cross(y))
	}
	if y.Cross(x) != NewVec3(0, 0, -1) {
		t.Fatalf("anti-commutativity %+v", y.Cross(x))
	}
}

func TestVec3Normalized(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalized()
	if !almostEqual(v.Length(), 1) {
		t.Fatalf("length %g", v.Length())
	}
	if !v.Compare(NewVec3(0.6, 0, 0.8), 1e-6) {
		t.Fatalf("direction %+v", v)
	}
}

func TestMat4IdentityMul(t *testing.T) {
	id := NewMat4Identity()
	m := NewMat4Translation(NewVec3(1, 2, 3))
	if id.Mul(m) != m || m.Mul(id) != m {
		t.Fatalf("identity must be neutral")
	}
}

func TestMat4TranslationComposition(t *testing.T) {
	a := NewMat4Translation(NewVec3(1, 0, 0))
	b := NewMat4Translation(NewVec3(0, 2, 0))
	c := a.Mul(b)
	if c.Data[12] != 1 || c.Data[13] != 2 || c.Data[14] != 0 {
		t.Fatalf("composed translation %+v", c.Data)
	}
}

func TestMat4LookAtOrigin(t *testing.T) {
	// Looking at the origin from +Z down the negative Z axis.
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())

	// The eye maps to the view-space origin.
	ex := view.Data[8]*5 + view.Data[12]
	ey := view.Data[9]*5 + view.Data[13]
	ez := view.Data[10]*5 + view.Data[14]
	if !almostEqual(ex, 0) || !almostEqual(ey, 0) || !almostEqual(ez, 0) {
		t.Fatalf("eye maps to (%g, %g, %g), want the origin", ex, ey, ez)
	}

	// The target sits on the negative z axis, one eye-distance away.
	if !almostEqual(view.Data[12], 0) || !almostEqual(view.Data[13], 0) || !almostEqual(view.Data[14], -5) {
		t.Fatalf("target maps to (%g, %g, %g), want (0, 0, -5)", view.Data[12], view.Data[13], view.Data[14])
	}
}

func TestMat4Perspective(t *testing.T) {
	m := NewMat4Perspective(DegToRad(90), 1, 0.1, 100)
	// tan(45°) = 1, so the focal terms are 1.
	if !almostEqual(m.Data[0], 1) || !almostEqual(m.Data[5], 1) {
		t.Fatalf("focal terms %g %g", m.Data[0], m.Data[5])
	}
	if m.Data[11] != -1 {
		t.Fatalf("w term %g", m.Data[11])
	}
}

func TestTransformLocalRecomputesWhenDirty(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(1, 2, 3))
	m := tr.Local()
	if m.Data[12] != 1 || m.Data[13] != 2 || m.Data[14] != 3 {
		t.Fatalf("local translation %+v", m.Data)
	}

	tr.SetPosition(NewVec3(4, 5, 6))
	m = tr.Local()
	if m.Data[12] != 4 || m.Data[13] != 5 || m.Data[14] != 6 {
		t.Fatalf("local translation after move %+v", m.Data)
	}

	tr.SetScale(NewVec3(2, 2, 2))
	m = tr.Local()
	if m.Data[0] != 2 || m.Data[5] != 2 || m.Data[10] != 2 {
		t.Fatalf("local scale %+v", m.Data)
	}
}

func TestClampAndMax(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("clamp")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Fatal("max")
	}
}

func TestDegToRad(t *testing.T) {
	if !almostEqual(DegToRad(180), Pi) {
		t.Fatalf("got %g", DegToRad(180))
	}
}
