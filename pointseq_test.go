package spirograph

import (
	"errors"
	"slices"
	"testing"
)

func TestPointSeq(t *testing.T) {
	ps, err := NewPointSeq([]float64{1, 2}, []float64{4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if err := ps.Validate(); err != nil {
		t.Fatal(err)
	}
	if n := ps.Len(); n != 2 {
		t.Errorf("got length %d, want 2", n)
	}
	diff(t, []Point{Pt(1, 4), Pt(2, 5)}, slices.Collect(ps.Points()))
	diff(t, ps, FromPoints([]Point{Pt(1, 4), Pt(2, 5)}))
}

func TestNewPointSeqCopies(t *testing.T) {
	xs, ys := []float64{1, 2}, []float64{3, 4}
	ps, err := NewPointSeq(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	xs[0], ys[0] = 100, 100
	diff(t, Pt(1, 3), ps.At(0))
}

func TestNewPointSeqLengthMismatch(t *testing.T) {
	for _, tt := range []struct{ xs, ys []float64 }{
		{[]float64{1, 2, 3}, []float64{4, 5}},
		{nil, []float64{1}},
	} {
		ps, err := NewPointSeq(tt.xs, tt.ys)
		var serr *InvalidShapeError
		if !errors.As(err, &serr) {
			t.Errorf("NewPointSeq(%v, %v): got error %v, want *InvalidShapeError", tt.xs, tt.ys, err)
		}
		if ps != nil {
			t.Errorf("got %v alongside an error", ps)
		}
	}
}

func TestPointSeqBoundingBox(t *testing.T) {
	ps := FromPoints([]Point{Pt(1, 4), Pt(-2, 5), Pt(0, -1)})
	diff(t, Rect{-2, -1, 1, 5}, ps.BoundingBox())
	diff(t, Pt(-0.5, 2), ps.BoundingBox().Center())
	diff(t, Rect{}, PointSeq{{}, {}, {}}.BoundingBox())
}

func TestPointSeqHomogeneous(t *testing.T) {
	ps := PointSeq{{2, 4}, {6, 8}, {2, 4}}
	diff(t, Pt(1, 3), ps.At(0))
	diff(t, Pt(1, 2), ps.At(1))
}
