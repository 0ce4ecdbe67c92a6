package spirograph

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// PathEncoder serializes a point sequence into an SVG document containing a
// single open path.
//
// Points are expected in the normalized square [-1, 1]². Before encoding, they
// are translated by (1, 1) and scaled by (50·width, 50·height), which maps the
// square onto a user space of (100·width) × (100·height) units. The document
// declares a physical size of width × height centimeters, so one user unit is
// 0.1 mm.
//
// The zero value is ready to use.
type PathEncoder struct {
	// Padding is a margin in centimeters added on every side of the drawing.
	// It enlarges the physical size and the viewBox without moving the path.
	Padding float64
	// MaxPrecision limits the number of decimals of path coordinates. Zero
	// means full precision.
	MaxPrecision int
}

// EncodePath encodes points with the default [PathEncoder] and returns the
// document. See [PathEncoder.Encode].
func EncodePath(points PointSeq, width, height float64) (string, error) {
	var sb strings.Builder
	if err := (PathEncoder{}).Encode(&sb, points, width, height); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Encode writes an SVG document of width × height centimeters to w. The path
// consists of a move to the first point and a line to every subsequent point,
// with no closing command. It is drawn without fill and with a black stroke of
// one user unit.
//
// Encode returns an [*InvalidShapeError] for malformed point sequences, an
// [*InvalidInputError] if points is empty, and an [*InvalidParameterError] if
// the dimensions or the padding are not usable. Nothing is written in those
// cases.
func (enc PathEncoder) Encode(w io.Writer, points PointSeq, width, height float64) error {
	if err := points.Validate(); err != nil {
		return err
	}
	if points.Len() == 0 {
		return &InvalidInputError{Name: "points", Index: -1, Value: 0, Reason: "at least one point is required"}
	}
	if err := checkDimension("width", width); err != nil {
		return err
	}
	if err := checkDimension("height", height); err != nil {
		return err
	}
	if enc.Padding < 0 || math.IsNaN(enc.Padding) || math.IsInf(enc.Padding, 0) {
		return &InvalidParameterError{Name: "padding", Value: enc.Padding, Reason: "padding must be finite and non-negative"}
	}

	tr, err := NewTransform(points)
	if err != nil {
		return err
	}
	doc := tr.Translate(1, 1).Scale(50*width, 50*height).Points()

	Logger().Debug("encoding path",
		slog.Int("points", doc.Len()),
		slog.Float64("width", width),
		slog.Float64("height", height))

	ew := &errWriter{w: w}
	enc.writeHeader(ew, width, height)
	ew.printf("  <path d=\"")
	if err := Polyline(doc).WriteSVG(ew, SVGOptions{MaxPrecision: enc.MaxPrecision, Separator: "\n           "}); err != nil {
		return err
	}
	ew.printf("\"\n        fill=\"none\" stroke=\"black\" stroke-width=\"1\" />\n")
	ew.printf("</svg>\n")
	return ew.err
}

func (enc PathEncoder) writeHeader(ew *errWriter, width, height float64) {
	p := enc.Padding
	f := func(v float64) string { return formatFloat(v, 6) }
	ew.printf("<?xml version=\"1.0\" standalone=\"no\"?>\n")
	ew.printf("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\"\n")
	ew.printf("  \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	ew.printf("<svg width=\"%scm\" height=\"%scm\" viewBox=\"%s %s %s %s\"\n",
		f(width+2*p), f(height+2*p),
		f(-100*p), f(-100*p), f(100*(width+2*p)), f(100*(height+2*p)))
	ew.printf("     version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n")
}

func checkDimension(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &InvalidParameterError{Name: name, Value: v, Reason: "dimension must be positive and finite"}
	}
	return nil
}

// errWriter remembers the first write error and drops all later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
