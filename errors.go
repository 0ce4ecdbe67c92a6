package spirograph

import (
	"fmt"
)

// InvalidShapeError is returned when a point sequence does not consist of
// exactly three rows of equal length.
type InvalidShapeError struct {
	// Rows is the number of rows that was supplied.
	Rows int
	// Row is the index of the first row whose length differs from row 0, or -1
	// if the row count itself is wrong.
	Row int
}

func (err *InvalidShapeError) Error() string {
	if err.Row >= 0 {
		return fmt.Sprintf("spirograph: row %d of point sequence has a different length than row 0", err.Row)
	}
	return fmt.Sprintf("spirograph: point sequence must have 3 rows, got %d", err.Rows)
}

// InvalidInputError is returned when a numeric sequence or count cannot be
// used, for example because it contains NaN or infinite values.
type InvalidInputError struct {
	Name   string
	Index  int
	Value  float64
	Reason string
}

func (err *InvalidInputError) Error() string {
	if err.Index >= 0 {
		return fmt.Sprintf("spirograph: invalid %s[%d] = %g: %s", err.Name, err.Index, err.Value, err.Reason)
	}
	return fmt.Sprintf("spirograph: invalid %s = %g: %s", err.Name, err.Value, err.Reason)
}

// DimensionMismatchError is returned by [Epicycle.AddCircles] when the
// parameter slices differ in length.
type DimensionMismatchError struct {
	Radii, Speeds, Phases int
}

func (err *DimensionMismatchError) Error() string {
	return fmt.Sprintf("spirograph: parameter lists must have the same length, got %d radii, %d speeds, %d phases",
		err.Radii, err.Speeds, err.Phases)
}

// UndefinedPeriodError is returned by [Epicycle.Period] when the circle speeds
// are not all non-zero integers.
type UndefinedPeriodError struct {
	// Index is the index of the offending circle, or -1 if the epicycle has
	// no circles.
	Index int
	Speed float64
}

func (err *UndefinedPeriodError) Error() string {
	if err.Index < 0 {
		return "spirograph: period of an epicycle without circles is undefined"
	}
	return fmt.Sprintf("spirograph: period is undefined, circle %d has speed %g which is not a non-zero integer",
		err.Index, err.Speed)
}

// InvalidParameterError is returned for degenerate geometric parameters, such
// as a radius ratio of zero.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (err *InvalidParameterError) Error() string {
	return fmt.Sprintf("spirograph: invalid parameter %s = %g: %s", err.Name, err.Value, err.Reason)
}
