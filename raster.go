package spirograph

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"

	"golang.org/x/image/vector"
)

// RasterOptions configures [Rasterize]. Zero fields take the documented
// defaults.
type RasterOptions struct {
	// Size of the image in pixels. Defaults to 800×800.
	Width, Height int
	// StrokeWidth is the width of the trajectory in pixels. Defaults to 1.5.
	StrokeWidth float64
	// Stroke is the trajectory's color. Defaults to black.
	Stroke color.Color
	// Background fills the image before drawing. Defaults to white.
	Background color.Color
	// PolygonSides, if at least 3, draws the outline of a regular polygon
	// inscribed in the unit circle underneath the trajectory.
	PolygonSides int
	// PolygonStroke is the color of the polygon outline. Defaults to light
	// gray.
	PolygonStroke color.Color
}

func (opts RasterOptions) withDefaults() RasterOptions {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 800
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 1.5
	}
	if opts.Stroke == nil {
		opts.Stroke = color.Black
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.PolygonStroke == nil {
		opts.PolygonStroke = color.Gray{Y: 0xc0}
	}
	return opts
}

// Rasterize draws points, expected in the normalized square [-1, 1]², as a
// polyline onto a new image. The square is mapped onto the whole image with
// the y axis pointing down, matching [PathEncoder].
//
// Rasterize returns an [*InvalidShapeError] for malformed point sequences and
// an [*InvalidParameterError] for non-positive sizes or stroke widths.
func Rasterize(points PointSeq, opts RasterOptions) (*image.RGBA, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if opts.Width < 0 {
		return nil, &InvalidParameterError{Name: "width", Value: float64(opts.Width), Reason: "size must be positive"}
	}
	if opts.Height < 0 {
		return nil, &InvalidParameterError{Name: "height", Value: float64(opts.Height), Reason: "size must be positive"}
	}
	if !(opts.StrokeWidth > 0) {
		return nil, &InvalidParameterError{Name: "stroke width", Value: opts.StrokeWidth, Reason: "stroke width must be positive"}
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	toPixels := Translate(Vec(1, 1)).ThenScale(float64(opts.Width)/2, float64(opts.Height)/2)

	if opts.PolygonSides >= 3 {
		poly, err := RegularPolygon(opts.PolygonSides)
		if err != nil {
			return nil, err
		}
		strokePath(img, Polyline(poly).Transform(toPixels), opts.StrokeWidth, opts.PolygonStroke)
	}
	drawn := strokePath(img, Polyline(points).Transform(toPixels), opts.StrokeWidth, opts.Stroke)

	Logger().Debug("rasterized trajectory",
		slog.Int("points", points.Len()),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Bool("visible", drawn))
	return img, nil
}

// strokePath strokes every line of p with square caps. Each line becomes a
// rectangle extended by half the stroke width at both ends, which also covers
// the joins between consecutive lines. It reports false without drawing if
// the stroked path cannot touch dst.
func strokePath(dst draw.Image, p BezPath, width float64, c color.Color) bool {
	b := dst.Bounds()
	if len(p) == 0 {
		return false
	}
	box := p.ControlBox().Inflate(width, width)
	if box.X1 < float64(b.Min.X) || box.Y1 < float64(b.Min.Y) ||
		box.X0 > float64(b.Max.X) || box.Y0 > float64(b.Max.Y) {
		return false
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	hw := width / 2

	var last Point
	var start Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			last, start = el.P0, el.P0
		case LineToKind:
			strokeLine(z, last, el.P0, hw)
			last = el.P0
		case ClosePathKind:
			strokeLine(z, last, start, hw)
			last = start
		}
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
	return true
}

func strokeLine(z *vector.Rasterizer, p0, p1 Point, hw float64) {
	d := p1.Sub(p0)
	if d.Hypot() == 0 {
		d = Vec(1, 0)
	}
	along := d.Normalize().Mul(hw)
	across := along.Turn90()
	a := p0.Translate(along.Negate())
	b := p1.Translate(along)
	corners := [4]Point{
		a.Translate(across),
		b.Translate(across),
		b.Translate(across.Negate()),
		a.Translate(across.Negate()),
	}
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, pt := range corners[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
