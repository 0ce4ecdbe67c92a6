package spirograph

import (
	"iter"
	"math"
	"slices"
)

// PointSeq is an ordered sequence of points in homogeneous coordinates, stored
// as three rows of equal length: x, y, and w. For all sequences produced by
// this package, w is 1.
//
// A PointSeq indexed as ps[row][col] mirrors a 3×N matrix, which is the shape
// affine transforms are applied to.
type PointSeq [][]float64

// NewPointSeq returns a point sequence with the given coordinates and w set to
// 1. The x and y slices are copied. It returns an [*InvalidShapeError] if their
// lengths differ.
func NewPointSeq(xs, ys []float64) (PointSeq, error) {
	if len(xs) != len(ys) {
		return nil, &InvalidShapeError{Rows: 3, Row: 1}
	}
	return newPointSeq(xs, ys), nil
}

// newPointSeq is NewPointSeq for slices of equal length.
func newPointSeq(xs, ys []float64) PointSeq {
	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1
	}
	return PointSeq{
		slices.Clone(xs),
		slices.Clone(ys),
		ws,
	}
}

// FromPoints returns the homogeneous point sequence of pts.
func FromPoints(pts []Point) PointSeq {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	ws := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
		ws[i] = 1
	}
	return PointSeq{xs, ys, ws}
}

// Validate reports whether ps has exactly three rows of equal length. It
// returns an [*InvalidShapeError] otherwise.
func (ps PointSeq) Validate() error {
	if len(ps) != 3 {
		return &InvalidShapeError{Rows: len(ps), Row: -1}
	}
	for i := 1; i < len(ps); i++ {
		if len(ps[i]) != len(ps[0]) {
			return &InvalidShapeError{Rows: len(ps), Row: i}
		}
	}
	return nil
}

// Len returns the number of points. It is only meaningful for valid sequences.
func (ps PointSeq) Len() int {
	if len(ps) == 0 {
		return 0
	}
	return len(ps[0])
}

func (ps PointSeq) X() []float64 { return ps[0] }
func (ps PointSeq) Y() []float64 { return ps[1] }
func (ps PointSeq) W() []float64 { return ps[2] }

// At returns the i-th point, dividing by w.
func (ps PointSeq) At(i int) Point {
	w := ps[2][i]
	return Point{X: ps[0][i] / w, Y: ps[1][i] / w}
}

// Points returns an iterator over the sequence's points.
func (ps PointSeq) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range ps.Len() {
			if !yield(ps.At(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of ps.
func (ps PointSeq) Clone() PointSeq {
	if ps == nil {
		return nil
	}
	out := make(PointSeq, len(ps))
	for i, row := range ps {
		out[i] = slices.Clone(row)
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing all points. An empty
// sequence has a zero bounding box.
func (ps PointSeq) BoundingBox() Rect {
	if ps.Len() == 0 {
		return Rect{}
	}
	first := ps.At(0)
	bbox := NewRectFromPoints(first, first)
	for pt := range ps.Points() {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// checkFinite returns an [*InvalidInputError] for the first NaN or infinite
// value in vs.
func checkFinite(name string, vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{Name: name, Index: i, Value: v, Reason: "value is not finite"}
		}
	}
	return nil
}
