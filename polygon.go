package spirograph

import (
	"math"
)

// RegularPolygon returns the vertices of a regular n-gon inscribed in the unit
// circle, starting at angle 0 and proceeding counter-clockwise. The sequence
// is closed: it has n+1 points, and the last one equals the first.
//
// It returns an [*InvalidInputError] if n < 3.
func RegularPolygon(n int) (PointSeq, error) {
	if n < 3 {
		return nil, &InvalidInputError{Name: "n", Index: -1, Value: float64(n), Reason: "a polygon needs at least 3 sides"}
	}
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i := range n {
		ys[i], xs[i] = math.Sincos(2 * math.Pi * float64(i) / float64(n))
	}
	xs[n], ys[n] = xs[0], ys[0]
	return newPointSeq(xs, ys), nil
}
