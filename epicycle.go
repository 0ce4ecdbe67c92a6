package spirograph

import (
	"log/slog"
	"math"
	"math/big"
	"slices"
)

// Epicycle superposes the motion of several circles over a shared time domain.
// The composite position at each sample is the sum of every circle's local
// offset, taken in insertion order.
//
// The composite trajectory and the period are cached. Adding a circle marks
// them stale; they are recomputed on the next read. An Epicycle is meant to be
// owned by a single caller and is not safe for concurrent mutation.
//
// The zero value is an epicycle without circles and with an empty time domain,
// like the result of [NewEpicycle].
type Epicycle struct {
	circles []*Circle
	time    []float64

	x, y      []float64
	traj      PointSeq
	trajFresh bool

	period      float64
	periodErr   error
	periodFresh bool
}

// NewEpicycle returns an epicycle without circles and with an empty time
// domain.
func NewEpicycle() *Epicycle {
	return &Epicycle{time: []float64{}}
}

// AddCircle appends a circle and evaluates it against the current time
// domain.
func (e *Epicycle) AddCircle(radius, speed, phase float64) {
	c := NewCircle(radius, speed, phase)
	// e.time has already been validated, so this cannot fail.
	if err := c.Update(e.time); err != nil {
		panic(err)
	}
	e.circles = append(e.circles, c)
	e.trajFresh = false
	e.periodFresh = false
}

// AddCircles appends one circle per index of the parameter slices and then
// recomputes the composite trajectory. It returns a [*DimensionMismatchError]
// without adding anything if the slices differ in length.
func (e *Epicycle) AddCircles(radii, speeds, phases []float64) error {
	if len(radii) != len(speeds) || len(radii) != len(phases) {
		return &DimensionMismatchError{Radii: len(radii), Speeds: len(speeds), Phases: len(phases)}
	}
	for i := range radii {
		e.AddCircle(radii[i], speeds[i], phases[i])
	}
	e.recompute()
	return nil
}

// SetTimeDomain replaces the time domain, re-evaluates every circle against it
// and recomputes the composite trajectory. It returns an [*InvalidInputError]
// and leaves the epicycle unchanged if time contains NaN or infinite values.
func (e *Epicycle) SetTimeDomain(time []float64) error {
	if err := checkFinite("time", time); err != nil {
		return err
	}
	e.time = slices.Clone(time)
	for _, c := range e.circles {
		if err := c.Update(e.time); err != nil {
			panic(err)
		}
	}
	e.recompute()
	return nil
}

// TimeDomain returns a copy of the time domain.
func (e *Epicycle) TimeDomain() []float64 { return slices.Clone(e.time) }

// Len returns the number of circles.
func (e *Epicycle) Len() int { return len(e.circles) }

// Circle returns a copy of the i-th circle, including its samples.
func (e *Epicycle) Circle(i int) Circle {
	c := *e.circles[i]
	c.angles = slices.Clone(c.angles)
	c.localX = slices.Clone(c.localX)
	c.localY = slices.Clone(c.localY)
	return c
}

// X returns the composite x coordinates.
func (e *Epicycle) X() []float64 {
	e.refresh()
	return slices.Clone(e.x)
}

// Y returns the composite y coordinates.
func (e *Epicycle) Y() []float64 {
	e.refresh()
	return slices.Clone(e.y)
}

// Trajectory returns the composite trajectory as a homogeneous point
// sequence, recomputing it first if circles were added since the last read.
// The returned sequence is a copy.
func (e *Epicycle) Trajectory() PointSeq {
	e.refresh()
	return e.traj.Clone()
}

// Period returns the time after which the composite motion repeats, 2π divided
// by the least common multiple of the circle speeds.
//
// All speeds must be non-zero integers; otherwise, Period returns an
// [*UndefinedPeriodError]. The sign of a speed does not affect the period.
func (e *Epicycle) Period() (float64, error) {
	if !e.periodFresh {
		e.period, e.periodErr = period(e.circles)
		e.periodFresh = true
	}
	return e.period, e.periodErr
}

func period(circles []*Circle) (float64, error) {
	if len(circles) == 0 {
		return 0, &UndefinedPeriodError{Index: -1}
	}
	// The lcm of a few dozen small speeds already exceeds 64 bits.
	l := big.NewInt(1)
	var g, s big.Int
	for i, c := range circles {
		speed := c.Speed
		if speed == 0 || speed != math.Trunc(speed) || math.Abs(speed) > 1<<53 {
			return 0, &UndefinedPeriodError{Index: i, Speed: speed}
		}
		s.SetUint64(uint64(math.Abs(speed)))
		g.GCD(nil, nil, l, &s)
		l.Div(l, &g).Mul(l, &s)
	}
	f, _ := new(big.Float).SetInt(l).Float64()
	return 2 * math.Pi / f, nil
}

func (e *Epicycle) refresh() {
	if !e.trajFresh {
		e.recompute()
	}
}

// recompute sums the circles' local offsets and rebuilds the trajectory.
func (e *Epicycle) recompute() {
	n := len(e.time)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for _, c := range e.circles {
		for i := range n {
			xs[i] += c.localX[i]
			ys[i] += c.localY[i]
		}
	}
	e.x, e.y = xs, ys
	e.traj = newPointSeq(xs, ys)
	e.trajFresh = true
	Logger().Debug("recomputed epicycle trajectory",
		slog.Int("circles", len(e.circles)),
		slog.Int("samples", n))
}
