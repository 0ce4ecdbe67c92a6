package spirograph

// Transform applies a chain of affine transformations to a point sequence.
//
// Every method left-multiplies the current 3×N point matrix by a 3×3 matrix
// and returns the receiver, so calls can be chained. Operations are applied in
// call order: NewTransform(ps).Translate(...).Rotate(...) translates first and
// rotates second.
//
// A Transform owns a private copy of its input and is not safe for concurrent
// use.
type Transform struct {
	pts PointSeq
}

// NewTransform returns a transform over a copy of ps. It returns an
// [*InvalidShapeError] if ps does not have exactly three rows of equal length.
func NewTransform(ps PointSeq) (*Transform, error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return &Transform{pts: ps.Clone()}, nil
}

// Apply left-multiplies the points by the augmented matrix of aff. The w row is
// never modified, as the last row of an affine matrix is (0, 0, 1).
func (tr *Transform) Apply(aff Affine) *Transform {
	xs, ys, ws := tr.pts[0], tr.pts[1], tr.pts[2]
	for i := range xs {
		x, y, w := xs[i], ys[i], ws[i]
		xs[i] = aff.N0*x + aff.N2*y + aff.N4*w
		ys[i] = aff.N1*x + aff.N3*y + aff.N5*w
	}
	return tr
}

// Translate translates the points by (tx, ty).
func (tr *Transform) Translate(tx, ty float64) *Transform {
	return tr.Apply(Translate(Vec(tx, ty)))
}

// Rotate rotates the points about the origin by th radians, counter-clockwise
// for positive th in a y-up coordinate system.
func (tr *Transform) Rotate(th float64) *Transform {
	return tr.Apply(Rotate(th))
}

// Scale scales the points about the origin.
func (tr *Transform) Scale(sx, sy float64) *Transform {
	return tr.Apply(Scale(sx, sy))
}

// RotateAbout rotates the points by th radians about the pivot (px, py). It is
// exactly Translate(-px, -py), Rotate(th), Translate(px, py), in that order.
func (tr *Transform) RotateAbout(th, px, py float64) *Transform {
	return tr.Translate(-px, -py).Rotate(th).Translate(px, py)
}

// ScaleAbout scales the points by (sx, sy) about the pivot (px, py). It is
// exactly Translate(-px, -py), Scale(sx, sy), Translate(px, py), in that order.
func (tr *Transform) ScaleAbout(sx, sy, px, py float64) *Transform {
	return tr.Translate(-px, -py).Scale(sx, sy).Translate(px, py)
}

// Points returns a copy of the current point sequence.
func (tr *Transform) Points() PointSeq {
	return tr.pts.Clone()
}
