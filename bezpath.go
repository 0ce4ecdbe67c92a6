package spirograph

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a polyline path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s)", kind, el.P0)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path made of move, line and close elements.
type BezPath []PathElement

// Polyline returns the open path through all points of ps: a MoveTo to the
// first point, followed by a LineTo for every subsequent point. An empty
// sequence yields an empty path.
func Polyline(ps PointSeq) BezPath {
	n := ps.Len()
	if n == 0 {
		return nil
	}
	p := make(BezPath, 0, n)
	p.MoveTo(ps.At(0))
	for i := 1; i < n; i++ {
		p.LineTo(ps.At(i))
	}
	return p
}

// Transform returns a new path with an affine transformation applied to the
// path.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// ControlBox returns the smallest rectangle enclosing all points of the path.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	for _, el := range p {
		if el.Kind == ClosePathKind {
			continue
		}
		if first {
			first = false
			cbox = NewRectFromPoints(el.P0, el.P0)
		} else {
			cbox = cbox.UnionPoint(el.P0)
		}
	}
	return cbox
}

// WriteSVG writes the path as SVG path data to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Separator is written between elements. The zero value uses a single
	// space.
	Separator string
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	sep := []byte(" ")
	if opts.Separator != "" {
		sep = []byte(opts.Separator)
	}
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(sep)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", formatFloat(el.P0.X, opts.MaxPrecision), formatFloat(el.P0.Y, opts.MaxPrecision))
		case LineToKind:
			writef("L%s,%s", formatFloat(el.P0.X, opts.MaxPrecision), formatFloat(el.P0.Y, opts.MaxPrecision))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

func formatFloat(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
