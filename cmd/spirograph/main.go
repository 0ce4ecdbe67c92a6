// Command spirograph draws spirograph and epicycle curves and exports them as
// SVG documents and PNG previews.
//
// Usage:
//
//	spirograph -mode spiro -l 0.75 -k 0.3 -t1 62.83 -steps 10000 -o spiro.svg
//	spirograph -mode epicycle -speeds 3,7,31 -png preview.png
//	spirograph -config figure.yaml
//
// Flags given on the command line override the values of the -config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"honnef.co/go/spirograph"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "spirograph: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fig := DefaultFigure()

	// The first pass only locates the config file, so that the second pass
	// can apply explicit flags on top of it.
	pre := flag.NewFlagSet("spirograph", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	configPath := pre.String("config", "", "")
	bindFlags(pre, &Figure{}, new(bool))
	// Parse errors are reported by the second pass.
	_ = pre.Parse(args)
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return err
		}
		fig, err = LoadFigure(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *configPath, err)
		}
	}

	fs := flag.NewFlagSet("spirograph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "YAML figure `file`")
	verbose := new(bool)
	bindFlags(fs, &fig, verbose)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fillCircleDefaults(fs, &fig.Epicycle)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	spirograph.SetLogger(logger)
	defer spirograph.SetLogger(nil)

	if err := fig.Validate(); err != nil {
		return err
	}

	pts, err := generate(fig, logger)
	if err != nil {
		return err
	}
	pts, err = place(pts, fig.Placement)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	if fig.Output.SVG != "" {
		enc := spirograph.PathEncoder{Padding: fig.Output.Padding, MaxPrecision: fig.Output.Precision}
		err := writeFile(fig.Output.SVG, func(w io.Writer) error {
			return enc.Encode(w, pts, fig.Output.Width, fig.Output.Height)
		})
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "wrote %d points to %s\n", pts.Len(), fig.Output.SVG)
	}
	if fig.Output.PNG != "" {
		img, err := spirograph.Rasterize(pts, spirograph.RasterOptions{
			Width:        fig.Output.Size,
			Height:       fig.Output.Size,
			PolygonSides: fig.Output.Decorate,
		})
		if err != nil {
			return err
		}
		if err := writeFile(fig.Output.PNG, func(w io.Writer) error { return spirograph.WritePNG(w, img) }); err != nil {
			return err
		}
		p.Fprintf(stdout, "wrote %d×%d preview to %s\n", fig.Output.Size, fig.Output.Size, fig.Output.PNG)
	}
	return nil
}

func bindFlags(fs *flag.FlagSet, fig *Figure, verbose *bool) {
	fs.StringVar(&fig.Mode, "mode", fig.Mode, "generator: spiro, epicycle or polygon")

	fs.Float64Var(&fig.Spiro.L, "l", fig.Spiro.L, "spiro: drawing point distance over rolling circle radius")
	fs.Float64Var(&fig.Spiro.K, "k", fig.Spiro.K, "spiro: rolling circle radius over fixed circle radius")
	fs.Float64Var(&fig.Spiro.T0, "t0", fig.Spiro.T0, "spiro: initial angle in radians")
	fs.Float64Var(&fig.Spiro.T1, "t1", fig.Spiro.T1, "spiro: final angle in radians")
	fs.IntVar(&fig.Spiro.Steps, "steps", fig.Spiro.Steps, "spiro: number of angle samples")

	fs.Var((*floatList)(&fig.Epicycle.Radii), "radii", "epicycle: comma-separated circle radii")
	fs.Var((*floatList)(&fig.Epicycle.Speeds), "speeds", "epicycle: comma-separated integer circle speeds")
	fs.Var((*floatList)(&fig.Epicycle.Phases), "phases", "epicycle: comma-separated initial phases in radians")
	fs.IntVar(&fig.Epicycle.Density, "density", fig.Epicycle.Density, "epicycle: samples per unit of the largest speed")
	fs.BoolVar(&fig.Epicycle.Normalize, "normalize", fig.Epicycle.Normalize, "epicycle: scale radii to sum to 1")

	fs.IntVar(&fig.Polygon.Sides, "sides", fig.Polygon.Sides, "polygon: number of sides")

	fs.Float64Var(&fig.Placement.Rotate, "rotate", fig.Placement.Rotate, "rotate the drawing by `radians` about its center")
	fs.Float64Var(&fig.Placement.Scale, "scale", fig.Placement.Scale, "scale the drawing about its center")
	fs.BoolVar(&fig.Placement.Fit, "fit", fig.Placement.Fit, "scale the drawing to fill the unit square")

	fs.StringVar(&fig.Output.SVG, "o", fig.Output.SVG, "SVG output `file`, empty to skip")
	fs.StringVar(&fig.Output.PNG, "png", fig.Output.PNG, "PNG preview `file`, empty to skip")
	fs.Float64Var(&fig.Output.Width, "width", fig.Output.Width, "document width in cm")
	fs.Float64Var(&fig.Output.Height, "height", fig.Output.Height, "document height in cm")
	fs.Float64Var(&fig.Output.Padding, "padding", fig.Output.Padding, "document margin in cm")
	fs.IntVar(&fig.Output.Precision, "precision", fig.Output.Precision, "maximum decimals of path coordinates, 0 for full precision")
	fs.IntVar(&fig.Output.Size, "size", fig.Output.Size, "PNG size in pixels")
	fs.IntVar(&fig.Output.Decorate, "decorate", fig.Output.Decorate, "draw a regular polygon with this many sides behind the PNG preview")

	fs.BoolVar(verbose, "v", *verbose, "log debug information")
}

// fillCircleDefaults gives circles set through -speeds a radius of 1 and a
// phase of 0, unless -radii or -phases were given too or the existing lists
// already match.
func fillCircleDefaults(fs *flag.FlagSet, params *EpicycleParams) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["speeds"] {
		return
	}
	n := len(params.Speeds)
	if !set["radii"] && len(params.Radii) != n {
		params.Radii = nil
	}
	if !set["phases"] && len(params.Phases) != n {
		params.Phases = nil
	}
	params.fillDefaults()
}

// floatList is a flag.Value holding comma-separated numbers.
type floatList []float64

func (l *floatList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
