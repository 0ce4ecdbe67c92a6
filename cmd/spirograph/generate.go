package main

import (
	"log/slog"
	"math"

	"honnef.co/go/spirograph"
)

// generate produces the figure's trajectory in normalized coordinates.
func generate(fig Figure, logger *slog.Logger) (spirograph.PointSeq, error) {
	switch fig.Mode {
	case "spiro":
		s := fig.Spiro
		t, err := spirograph.Angles(s.T0, s.T1, s.Steps)
		if err != nil {
			return nil, err
		}
		logger.Debug("generating spirograph", "l", s.L, "k", s.K, "steps", s.Steps)
		return spirograph.Trajectory(s.L, s.K, t)

	case "epicycle":
		return generateEpicycle(fig.Epicycle, logger)

	case "polygon":
		return spirograph.RegularPolygon(fig.Polygon.Sides)

	default:
		panic("unreachable")
	}
}

func generateEpicycle(params EpicycleParams, logger *slog.Logger) (spirograph.PointSeq, error) {
	radii := params.Radii
	if params.Normalize {
		var sum float64
		for _, r := range radii {
			sum += math.Abs(r)
		}
		if sum > 0 {
			radii = make([]float64, len(params.Radii))
			for i, r := range params.Radii {
				radii[i] = r / sum
			}
		}
	}

	e := spirograph.NewEpicycle()
	if err := e.AddCircles(radii, params.Speeds, params.Phases); err != nil {
		return nil, err
	}

	var maxSpeed float64
	for _, s := range params.Speeds {
		maxSpeed = max(maxSpeed, math.Abs(s))
	}
	samples := int(math.Ceil(float64(params.Density) * max(maxSpeed, 1)))

	if period, err := e.Period(); err == nil {
		logger.Info("composite period", "period", period)
	} else {
		logger.Debug("no composite period", "err", err)
	}

	if err := e.SetTimeDomain(spirograph.Linspace(0, 2*math.Pi, samples)); err != nil {
		return nil, err
	}
	logger.Debug("generated epicycle", "circles", e.Len(), "samples", samples)
	return e.Trajectory(), nil
}

// place applies the placement options about the drawing's center.
func place(pts spirograph.PointSeq, pl Placement) (spirograph.PointSeq, error) {
	tr, err := spirograph.NewTransform(pts)
	if err != nil {
		return nil, err
	}
	c := pts.BoundingBox().Center()
	aff := spirograph.Identity
	if pl.Rotate != 0 {
		aff = spirograph.RotateAbout(pl.Rotate, c).Mul(aff)
	}
	if pl.Scale != 1 && pl.Scale != 0 {
		aff = spirograph.ScaleAbout(pl.Scale, pl.Scale, c).Mul(aff)
	}
	tr.Apply(aff)
	if pl.Fit {
		bbox := tr.Points().BoundingBox()
		side := max(bbox.Width(), bbox.Height())
		if side > 0 {
			bc := bbox.Center()
			tr.ScaleAbout(2/side, 2/side, bc.X, bc.Y).Translate(-bc.X, -bc.Y)
		}
	}
	return tr.Points(), nil
}
