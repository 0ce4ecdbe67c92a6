package spirograph

import (
	"math"
	"slices"
)

// Circle is a point rotating on a circle of a given radius at a constant
// angular speed, starting at an initial phase. It is the building block of an
// [Epicycle]: when it is not the last circle of an epicycle, the rotating point
// carries the center of the next circle.
//
// The derived samples (angles and local offsets) are computed by
// [Circle.Update] and can only be read through accessors, which return copies.
type Circle struct {
	// Radius of the circle.
	Radius float64
	// Speed is the signed angular speed in radians per unit of time.
	Speed float64
	// Phase is the angle at time zero, in radians.
	Phase float64

	angles []float64
	localX []float64
	localY []float64
}

// NewCircle returns a circle with no samples.
func NewCircle(radius, speed, phase float64) *Circle {
	return &Circle{
		Radius: radius,
		Speed:  speed,
		Phase:  phase,
	}
}

// Update recomputes all samples from the time domain: for every sample t,
// the angle is Speed·t + Phase and the local offset is Radius·(cos, sin) of
// that angle.
//
// Update returns an [*InvalidInputError] if time contains NaN or infinite
// values, in which case the previous samples are kept.
func (c *Circle) Update(time []float64) error {
	if err := checkFinite("time", time); err != nil {
		return err
	}
	angles := make([]float64, len(time))
	xs := make([]float64, len(time))
	ys := make([]float64, len(time))
	for i, t := range time {
		th := c.Speed*t + c.Phase
		sin, cos := math.Sincos(th)
		angles[i] = th
		xs[i] = c.Radius * cos
		ys[i] = c.Radius * sin
	}
	c.angles, c.localX, c.localY = angles, xs, ys
	return nil
}

// Position returns the offset of the rotating point from the circle's center
// at time t.
func (c *Circle) Position(t float64) Vec2 {
	return VecFromAngle(c.Speed*t + c.Phase).Mul(c.Radius)
}

// Len returns the number of samples.
func (c *Circle) Len() int { return len(c.angles) }

// Angles returns the sampled angles.
func (c *Circle) Angles() []float64 { return slices.Clone(c.angles) }

// LocalX returns the sampled x offsets relative to the circle's center.
func (c *Circle) LocalX() []float64 { return slices.Clone(c.localX) }

// LocalY returns the sampled y offsets relative to the circle's center.
func (c *Circle) LocalY() []float64 { return slices.Clone(c.localY) }

// LocalTrajectory returns the sampled offsets as two rows, x then y.
func (c *Circle) LocalTrajectory() [2][]float64 {
	return [2][]float64{c.LocalX(), c.LocalY()}
}
