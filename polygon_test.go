package spirograph

import (
	"errors"
	"math"
	"testing"
)

func TestRegularPolygon(t *testing.T) {
	for _, n := range []int{3, 4, 13} {
		ps, err := RegularPolygon(n)
		if err != nil {
			t.Fatal(err)
		}
		if ps.Len() != n+1 {
			t.Fatalf("%d-gon: got %d points, want %d", n, ps.Len(), n+1)
		}
		diff(t, ps.At(0), ps.At(n))
		assertNear(t, ps.At(0), Pt(1, 0), 1e-12)

		side := ps.At(0).Distance(ps.At(1))
		for i := range n {
			if d := ps.At(i).Distance(Pt(0, 0)); !approxEqual(d, 1) {
				t.Errorf("%d-gon: vertex %d is %v from the origin", n, i, d)
			}
			if d := ps.At(i).Distance(ps.At(i + 1)); !approxEqual(d, side) {
				t.Errorf("%d-gon: side %d has length %v, want %v", n, i, d, side)
			}
		}
		if !approxEqual(side, 2*math.Sin(math.Pi/float64(n))) {
			t.Errorf("%d-gon: side length %v", n, side)
		}
	}
}

func TestRegularPolygonCounterClockwise(t *testing.T) {
	ps, err := RegularPolygon(4)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, ps.At(1), Pt(0, 1), 1e-12)
}

func TestRegularPolygonInvalid(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := RegularPolygon(n)
		var ierr *InvalidInputError
		if !errors.As(err, &ierr) {
			t.Errorf("RegularPolygon(%d): got error %v, want *InvalidInputError", n, err)
		}
	}
}
