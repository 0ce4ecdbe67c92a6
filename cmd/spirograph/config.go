package main

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Figure describes one drawing: which generator to use, its parameters, and
// how to place and export the result.
type Figure struct {
	Mode string `yaml:"mode"`

	Spiro    SpiroParams    `yaml:"spiro"`
	Epicycle EpicycleParams `yaml:"epicycle"`
	Polygon  PolygonParams  `yaml:"polygon"`

	Placement Placement `yaml:"placement"`
	Output    Output    `yaml:"output"`
}

type SpiroParams struct {
	L     float64 `yaml:"l"`
	K     float64 `yaml:"k"`
	T0    float64 `yaml:"t0"`
	T1    float64 `yaml:"t1"`
	Steps int     `yaml:"steps"`
}

// EpicycleParams lists one radius, speed and phase per circle. The three lists
// must have the same length.
type EpicycleParams struct {
	Radii  []float64 `yaml:"radii"`
	Speeds []float64 `yaml:"speeds"`
	Phases []float64 `yaml:"phases"`
	// Samples per unit of the largest absolute speed.
	Density int `yaml:"density"`
	// Normalize scales radii so that they sum to 1.
	Normalize bool `yaml:"normalize"`
}

type PolygonParams struct {
	Sides int `yaml:"sides"`
}

type Placement struct {
	Rotate float64 `yaml:"rotate"`
	Scale  float64 `yaml:"scale"`
	Fit    bool    `yaml:"fit"`
}

type Output struct {
	SVG       string  `yaml:"svg"`
	PNG       string  `yaml:"png"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`
	Precision int     `yaml:"precision"`
	Size      int     `yaml:"size"`
	Decorate  int     `yaml:"decorate"`
}

// DefaultFigure returns the figure drawn when nothing else is specified: three
// equal circles turning at speeds 3, 7 and 31.
func DefaultFigure() Figure {
	return Figure{
		Mode: "epicycle",
		Spiro: SpiroParams{
			L:     0.8,
			K:     0.67,
			T0:    0,
			T1:    2 * math.Pi,
			Steps: 1000,
		},
		Epicycle: EpicycleParams{
			Radii:     []float64{1, 1, 1},
			Speeds:    []float64{3, 7, 31},
			Phases:    []float64{0, 0, 0},
			Density:   60,
			Normalize: true,
		},
		Polygon:   PolygonParams{Sides: 13},
		Placement: Placement{Scale: 1},
		Output: Output{
			SVG:    "spirograph.svg",
			Width:  10,
			Height: 10,
			Size:   800,
		},
	}
}

// LoadFigure decodes a YAML figure on top of the defaults. Unknown fields are
// rejected. Circles listed only by their speeds get a radius of 1 and a phase
// of 0.
func LoadFigure(r io.Reader) (Figure, error) {
	fig := DefaultFigure()
	fig.Epicycle.Radii = nil
	fig.Epicycle.Phases = nil
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fig); err != nil && err != io.EOF {
		return Figure{}, fmt.Errorf("decoding figure: %w", err)
	}
	fig.Epicycle.fillDefaults()
	return fig, nil
}

// fillDefaults gives every circle without an explicit radius or phase a radius
// of 1 and a phase of 0. Lists that are set are left alone, even if their
// length differs from the speeds.
func (params *EpicycleParams) fillDefaults() {
	n := len(params.Speeds)
	if params.Radii == nil {
		params.Radii = make([]float64, n)
		for i := range params.Radii {
			params.Radii[i] = 1
		}
	}
	if params.Phases == nil {
		params.Phases = make([]float64, n)
	}
}

// Validate checks the parts of the figure the library does not check itself.
func (fig Figure) Validate() error {
	switch fig.Mode {
	case "spiro", "epicycle", "polygon":
	default:
		return fmt.Errorf("unknown mode %q, want spiro, epicycle or polygon", fig.Mode)
	}
	if fig.Mode == "epicycle" {
		if len(fig.Epicycle.Speeds) == 0 {
			return fmt.Errorf("epicycle needs at least one circle")
		}
		if fig.Epicycle.Density < 1 {
			return fmt.Errorf("density must be at least 1, got %d", fig.Epicycle.Density)
		}
	}
	if fig.Output.SVG == "" && fig.Output.PNG == "" {
		return fmt.Errorf("no output requested")
	}
	return nil
}
