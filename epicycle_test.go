package spirograph

import (
	"errors"
	"math"
	"testing"
)

func TestEpicycleTrajectoryIsSum(t *testing.T) {
	radii := []float64{1, 0.5, 0.25}
	speeds := []float64{1, -3, 7}
	phases := []float64{0, 0.5, -1}
	time := Linspace(0, 2*math.Pi, 101)

	e := NewEpicycle()
	if err := e.AddCircles(radii, speeds, phases); err != nil {
		t.Fatal(err)
	}
	if err := e.SetTimeDomain(time); err != nil {
		t.Fatal(err)
	}

	wantX := make([]float64, len(time))
	wantY := make([]float64, len(time))
	for i := range radii {
		c := NewCircle(radii[i], speeds[i], phases[i])
		if err := c.Update(time); err != nil {
			t.Fatal(err)
		}
		for j := range time {
			wantX[j] += c.LocalX()[j]
			wantY[j] += c.LocalY()[j]
		}
	}

	traj := e.Trajectory()
	if err := traj.Validate(); err != nil {
		t.Fatal(err)
	}
	diff(t, wantX, traj.X(), approx)
	diff(t, wantY, traj.Y(), approx)
	diff(t, wantX, e.X(), approx)
	diff(t, wantY, e.Y(), approx)
	for _, w := range traj.W() {
		if w != 1 {
			t.Fatalf("got w = %v, want 1", w)
		}
	}
}

func TestEpicycleAddCircleAfterTimeDomain(t *testing.T) {
	e := NewEpicycle()
	time := []float64{0, 1, 2}
	if err := e.SetTimeDomain(time); err != nil {
		t.Fatal(err)
	}
	e.AddCircle(1, 1, 0)
	if n := e.Trajectory().Len(); n != 3 {
		t.Fatalf("got %d points, want 3", n)
	}
	e.AddCircle(2, 0, 0)
	// The new circle is included without recomputing the time domain.
	diff(t, []float64{3, math.Cos(1) + 2, math.Cos(2) + 2}, e.Trajectory().X(), approx)
	if n := e.Len(); n != 2 {
		t.Errorf("got %d circles, want 2", n)
	}
	c := e.Circle(1)
	diff(t, []float64{2, 2, 2}, c.LocalX(), approx)
}

func TestEpicycleEmpty(t *testing.T) {
	e := NewEpicycle()
	traj := e.Trajectory()
	if err := traj.Validate(); err != nil {
		t.Fatal(err)
	}
	if n := traj.Len(); n != 0 {
		t.Errorf("got %d points, want 0", n)
	}
	e.AddCircle(1, 1, 0)
	if n := e.Trajectory().Len(); n != 0 {
		t.Errorf("got %d points, want 0", n)
	}
}

func TestEpicyclePeriod(t *testing.T) {
	e := NewEpicycle()
	e.AddCircle(1, 2, 0)
	e.AddCircle(1, 3, 0)
	p, err := e.Period()
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(p, math.Pi/3) {
		t.Errorf("got period %v, want π/3", p)
	}

	// Adding a circle invalidates the cached period.
	e.AddCircle(1, -4, 0)
	p, err = e.Period()
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(p, 2*math.Pi/12) {
		t.Errorf("got period %v, want π/6", p)
	}
}

func TestEpicyclePeriodBeyond64Bits(t *testing.T) {
	primes := []float64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}
	e := NewEpicycle()
	product := 1.0
	for _, p := range primes {
		e.AddCircle(1, p, 0)
		product *= p
	}
	// The product of these primes is about 3.26e19, more than 2^64.
	if product <= math.MaxUint64 {
		t.Fatalf("product %v fits in 64 bits", product)
	}
	got, err := e.Period()
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * math.Pi / product
	if math.Abs(got-want) > 1e-12*want {
		t.Errorf("got period %v, want %v", got, want)
	}

	// Repeated speeds do not change the lcm.
	e.AddCircle(1, -53, 0)
	e.AddCircle(1, 6, 0)
	again, err := e.Period()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(again-want) > 1e-12*want {
		t.Errorf("got period %v after adding divisors, want %v", again, want)
	}
}

func TestEpicycleZeroValue(t *testing.T) {
	var e Epicycle
	_, err := e.Period()
	var perr *UndefinedPeriodError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *UndefinedPeriodError", err)
	}
	if perr.Index != -1 {
		t.Errorf("got index %d, want -1", perr.Index)
	}
	if n := e.Trajectory().Len(); n != 0 {
		t.Errorf("got %d points, want none", n)
	}

	e.AddCircle(1, 2, 0)
	if err := e.SetTimeDomain([]float64{0, math.Pi / 4}); err != nil {
		t.Fatal(err)
	}
	p, err := e.Period()
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(p, math.Pi) {
		t.Errorf("got period %v, want π", p)
	}
	assertNear(t, e.Trajectory().At(1), Pt(0, 1), 1e-12)
}

func TestEpicyclePeriodUndefined(t *testing.T) {
	tests := []struct {
		speeds []float64
		index  int
	}{
		{nil, -1},
		{[]float64{2, 0}, 1},
		{[]float64{1.5, 2}, 0},
		{[]float64{1, 2, math.NaN()}, 2},
	}
	for _, tt := range tests {
		e := NewEpicycle()
		for _, s := range tt.speeds {
			e.AddCircle(1, s, 0)
		}
		_, err := e.Period()
		var periodErr *UndefinedPeriodError
		if !errors.As(err, &periodErr) {
			t.Errorf("speeds %v: got error %v, want *UndefinedPeriodError", tt.speeds, err)
			continue
		}
		if periodErr.Index != tt.index {
			t.Errorf("speeds %v: got index %d, want %d", tt.speeds, periodErr.Index, tt.index)
		}
	}
}

func TestEpicycleDimensionMismatch(t *testing.T) {
	e := NewEpicycle()
	err := e.AddCircles([]float64{1, 2}, []float64{1, 2, 3}, []float64{0, 0})
	var dimErr *DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("got error %v, want *DimensionMismatchError", err)
	}
	diff(t, DimensionMismatchError{Radii: 2, Speeds: 3, Phases: 2}, *dimErr)
	if n := e.Len(); n != 0 {
		t.Errorf("got %d circles after failed AddCircles, want 0", n)
	}

	// Equal radii and speed counts do not hide a mismatch in phases.
	err = e.AddCircles([]float64{1, 2}, []float64{1, 2}, []float64{0})
	if !errors.As(err, &dimErr) {
		t.Fatalf("got error %v, want *DimensionMismatchError", err)
	}
}

func TestEpicycleInvalidTimeDomain(t *testing.T) {
	e := NewEpicycle()
	e.AddCircle(1, 1, 0)
	if err := e.SetTimeDomain([]float64{0, 1}); err != nil {
		t.Fatal(err)
	}
	err := e.SetTimeDomain([]float64{0, math.NaN()})
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("got error %v, want *InvalidInputError", err)
	}
	diff(t, []float64{0, 1}, e.TimeDomain())
	if n := e.Trajectory().Len(); n != 2 {
		t.Errorf("got %d points, want 2", n)
	}
}
