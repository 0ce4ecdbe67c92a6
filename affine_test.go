package spirograph

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffinePivot(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(1, 2)

	assertNear(t, center.Transform(RotateAbout(1.234, center)), center, epsilon)
	assertNear(t, Pt(2, 2).Transform(RotateAbout(math.Pi/2, center)), Pt(1, 3), epsilon)

	assertNear(t, center.Transform(ScaleAbout(3, 5, center)), center, epsilon)
	assertNear(t, Pt(2, 3).Transform(ScaleAbout(3, 5, center)), Pt(4, 7), epsilon)

	// Rotation about a pivot preserves distances to it.
	p := Pt(4, -1).Transform(RotateAbout(0.5, center))
	if d := p.Distance(center); !approxEqual(d, Pt(4, -1).Distance(center)) {
		t.Errorf("got distance %v after rotation", d)
	}
}

func TestAffineMatrix(t *testing.T) {
	aff := Affine{1, 2, 3, 4, 5, 6}
	want := [3][3]float64{
		{1, 3, 5},
		{2, 4, 6},
		{0, 0, 1},
	}
	diff(t, want, aff.Matrix())
}
