package spirograph

import (
	"math"
)

// Linspace returns n evenly spaced samples over [start, end], both endpoints
// included. With n == 1, the only sample is start.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Avoid accumulating rounding error in the last sample.
	out[n-1] = end
	return out
}

// Angles discretizes the angle t, the angle between the x axis and the segment
// joining the centers of the fixed and the rolling circle, into steps evenly
// spaced samples from t0 to t1 inclusive.
//
// It returns an [*InvalidInputError] if steps < 1 or if t0 or t1 is not
// finite.
func Angles(t0, t1 float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, &InvalidInputError{Name: "steps", Index: -1, Value: float64(steps), Reason: "at least one step is required"}
	}
	if err := checkFinite("range", []float64{t0, t1}); err != nil {
		return nil, err
	}
	return Linspace(t0, t1, steps), nil
}

// Trajectory computes the hypotrochoid traced by a point on a circle rolling
// inside a fixed circle of radius 1.
//
// kr is the ratio of the rolling circle's radius to the fixed circle's radius,
// and lr is the ratio of the drawing point's distance from the rolling
// circle's center to the rolling circle's radius. The drawing point stays
// within the rolling circle for lr ∈ [0, 1].
//
// For every sample t:
//
//	x = (1−kr)·cos(t) + lr·kr·cos((1−kr)/kr · t)
//	y = (1−kr)·sin(t) − lr·kr·sin((1−kr)/kr · t)
//
// Trajectory returns an [*InvalidParameterError] if kr is zero or either ratio
// is not finite, and an [*InvalidInputError] if t contains non-finite values.
func Trajectory(lr, kr float64, t []float64) (PointSeq, error) {
	if err := checkRatios(lr, kr); err != nil {
		return nil, err
	}
	if err := checkFinite("t", t); err != nil {
		return nil, err
	}
	xs := make([]float64, len(t))
	ys := make([]float64, len(t))
	q := (1 - kr) / kr
	for i, ti := range t {
		sin, cos := math.Sincos(ti)
		sinq, cosq := math.Sincos(q * ti)
		xs[i] = (1-kr)*cos + lr*kr*cosq
		ys[i] = (1-kr)*sin - lr*kr*sinq
	}
	return newPointSeq(xs, ys), nil
}

// RollingCenters returns the positions of the rolling circle's center for
// every sample of t. The center travels on a circle of radius 1−kr.
func RollingCenters(kr float64, t []float64) (PointSeq, error) {
	if err := checkRatios(0, kr); err != nil {
		return nil, err
	}
	if err := checkFinite("t", t); err != nil {
		return nil, err
	}
	xs := make([]float64, len(t))
	ys := make([]float64, len(t))
	for i, ti := range t {
		sin, cos := math.Sincos(ti)
		xs[i] = (1 - kr) * cos
		ys[i] = (1 - kr) * sin
	}
	return newPointSeq(xs, ys), nil
}

func checkRatios(lr, kr float64) error {
	switch {
	case math.IsNaN(lr) || math.IsInf(lr, 0):
		return &InvalidParameterError{Name: "lr", Value: lr, Reason: "ratio is not finite"}
	case math.IsNaN(kr) || math.IsInf(kr, 0):
		return &InvalidParameterError{Name: "kr", Value: kr, Reason: "ratio is not finite"}
	case kr == 0:
		return &InvalidParameterError{Name: "kr", Value: kr, Reason: "rolling circle must have a non-zero radius"}
	}
	return nil
}
