// Package spirograph generates spirograph and epicycle curves and exports them
// as vector paths. It is meant to sit underneath an interactive front end or a
// command line tool, which supplies parameters and consumes point sequences.
//
// # Point sequences
//
// Curves are represented as [PointSeq], an ordered sequence of points in
// homogeneous coordinates stored as three rows x, y, and w, with w = 1. This
// is the 3×N matrix that affine transforms are applied to. [Transform] wraps a
// copy of a sequence and applies a chain of translations, rotations and
// scalings to it, including rotation and scaling about a pivot.
//
// # Curves
//
// [Circle] samples a point rotating on a circle. [Epicycle] sums the motion of
// several circles over a shared time domain and derives the composite period,
// which exists when all speeds are integers. [Trajectory] evaluates the closed
// form of a hypotrochoid, the curve drawn by a point on a circle rolling inside
// a fixed circle, and [Angles] discretizes its angle domain. [RegularPolygon]
// provides polygon outlines for decoration.
//
// # Output
//
// [PathEncoder] serializes a sequence, expected in the normalized square
// [-1, 1]², into an SVG document with a single open path. [Rasterize] draws the
// same sequence into an image for previews.
//
// # Errors
//
// Invalid input is reported with typed errors ([*InvalidShapeError],
// [*InvalidInputError], [*DimensionMismatchError], [*UndefinedPeriodError],
// [*InvalidParameterError]), which can be matched with [errors.As]. A failing
// operation leaves existing state untouched.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records
// about recomputations.
package spirograph
