// Package pipeline chains the planegraph operations for command-line use.
//
// The kernel packages (geom, graph, intersect, udg, free, components) are
// pure functions over a graph. This package adds what a caller needs around
// them: input validation, caching of intersection graphs, logging, hook
// calls and rendering.
//
// # Architecture
//
// A typical run has up to four stages:
//
//  1. Build: either an intersection graph from a point set ([Runner.Intersect])
//     or a unit disk graph over the points ([Runner.UDG])
//  2. Analyze: free edges and connected components ([Runner.Analyze])
//  3. Layout: optional component arrangement ([Runner.Layout])
//  4. Render: DOT, SVG, PNG or PDF output ([Runner.Render])
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//
//	g, err := runner.Intersect(ctx, points, opts)
//	if err != nil {
//	    return err
//	}
//	a := runner.Analyze(ctx, g)
//	artifacts, err := runner.Render(ctx, g, a.Free, opts)
//
// # Editing
//
// [Editor] models an interactive editing session: a point set whose unit disk
// graph and free edges are recomputed after every change.
package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/planegraph/pkg/components"
	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/render/nodelink"
	"github.com/matzehuels/planegraph/pkg/udg"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultRadius is the unit disk radius used when none is configured.
	DefaultRadius = udg.DefaultRadius

	// DefaultMaxIntersectPoints bounds the point count accepted by
	// Runner.Intersect. Sixty points give 1770 diagonals and about 1.5 million
	// segment tests.
	DefaultMaxIntersectPoints = 60

	// DefaultCacheTTL is how long an intersection graph stays cached.
	DefaultCacheTTL = 30 * 24 * time.Hour

	// DefaultScale is the number of points per plane unit in drawings.
	DefaultScale = nodelink.DefaultScale

	// DefaultPNGScale is the rasterization factor for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Build options
	Radius             float64
	MaxIntersectPoints int // <0 disables the limit
	CacheTTL           time.Duration
	Refresh            bool // recompute and overwrite cached results

	// Render options
	Formats       []string
	HighlightFree bool
	Labels        bool
	Scale         float64
}

// SetDefaults fills zero values with defaults.
func (o *Options) SetDefaults() {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.MaxIntersectPoints == 0 {
		o.MaxIntersectPoints = DefaultMaxIntersectPoints
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate applies defaults and checks every option.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := errs.ValidateRadius(o.Radius); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidArgument, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidArgument, "invalid format: %q (must be one of: dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Analysis holds the derived properties of a graph.
type Analysis struct {
	// Free is the set of edges that cross no other edge.
	Free free.Set

	// Components lists the connected components in discovery order, with
	// Kinds[i] the shape of Components[i].
	Components []components.Component
	Kinds      []components.Kind

	// Summary counts components by kind.
	Summary components.Summary

	// Duration is the time spent on the analysis.
	Duration time.Duration
}

// String returns a one-line description of the analysis.
func (a Analysis) String() string {
	return fmt.Sprintf("%d free edges, %d components (%d isolated, %d paths, %d other)",
		a.Free.Len(), a.Summary.Components, a.Summary.Isolated, a.Summary.Paths, a.Summary.Other)
}
