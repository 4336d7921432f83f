package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/pipeline"
)

// =============================================================================
// Build Flags
// =============================================================================

// buildFlags are the graph construction flags shared by the analysis commands.
type buildFlags struct {
	radius    float64
	intersect bool
	noCache   bool
	refresh   bool
	maxPoints int
}

// register adds the build flags to cmd. The --intersect switch is only offered
// by commands that can work on either graph.
func (f *buildFlags) register(cmd *cobra.Command, withIntersect bool) {
	flags := cmd.Flags()
	flags.Float64VarP(&f.radius, "radius", "r", pipeline.DefaultRadius, "unit disk radius")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable the intersection graph cache")
	flags.BoolVar(&f.refresh, "refresh", false, "recompute cached intersection graphs")
	flags.IntVar(&f.maxPoints, "max-points", pipeline.DefaultMaxIntersectPoints, "largest point set accepted for intersection graphs (negative disables)")
	if withIntersect {
		flags.BoolVar(&f.intersect, "intersect", false, "use the intersection graph of the diagonals instead of the unit disk graph")
	}
}

// buildOptions merges the config with the flags the user set explicitly.
// An explicit radius is checked here because a zero value would otherwise be
// replaced by the default.
func (c *CLI) buildOptions(cmd *cobra.Command, f *buildFlags) (pipeline.Options, error) {
	opts := c.Config.pipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("radius") {
		if err := errs.ValidateRadius(f.radius); err != nil {
			return opts, err
		}
		opts.Radius = f.radius
	}
	if flags.Changed("max-points") {
		opts.MaxIntersectPoints = f.maxPoints
	}
	opts.Refresh = f.refresh
	err := opts.Validate()
	return opts, err
}

// =============================================================================
// Graph Construction
// =============================================================================

// built is a graph together with the runner that produced it.
type built struct {
	runner *pipeline.Runner
	graph  *graph.Graph
	opts   pipeline.Options
	cached bool
}

// build reads the points file and constructs either the unit disk graph or the
// intersection graph. The caller must close the returned runner.
func (c *CLI) build(ctx context.Context, cmd *cobra.Command, path string, f *buildFlags) (*built, error) {
	opts, err := c.buildOptions(cmd, f)
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	points, err := readPoints(path)
	if err != nil {
		return nil, err
	}
	prog.done("loaded points", "points", len(points), "file", path)

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return nil, fmt.Errorf("create runner: %w", err)
	}
	b := &built{runner: runner, opts: opts}

	if !f.intersect {
		b.graph, err = runner.PointsGraph(ctx, points, opts.Radius)
		if err != nil {
			runner.Close()
			return nil, err
		}
		return b, nil
	}

	d := len(points) * (len(points) - 1) / 2
	sp := startSpinner(ctx, os.Stderr, fmt.Sprintf("Testing %d diagonal pairs", d*(d-1)/2))
	b.graph, b.cached, err = runner.IntersectWithCacheInfo(ctx, points, opts)
	if err != nil {
		sp.StopWithError("Intersection graph failed")
		runner.Close()
		return nil, err
	}
	if b.cached {
		sp.StopWithSuccess("Loaded %d diagonals from cache", b.graph.VertexCount())
	} else {
		sp.StopWithSuccess("Found %d crossings among %d diagonals", b.graph.EdgeCount(), b.graph.VertexCount())
	}
	return b, nil
}

// vertexName returns the label of a vertex, or its id when it has none.
func vertexName(g *graph.Graph, id graph.VertexID) string {
	if v, ok := g.Vertex(id); ok && v.Label != "" {
		return v.Label
	}
	return fmt.Sprintf("v%d", id)
}

// =============================================================================
// Output Files
// =============================================================================

// outputPaths maps each format to the file it is written to. A single format
// uses output as given; several formats share output's base name.
func outputPaths(output string, formats []string) map[string]string {
	if output == "" {
		output = "graph"
	}
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		if filepath.Ext(output) == "" {
			output += "." + formats[0]
		}
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes every rendered format and reports the files.
func writeArtifacts(artifacts map[string][]byte, output string, formats []string) error {
	paths := outputPaths(output, formats)
	for _, f := range formats {
		if err := os.WriteFile(paths[f], artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f, err)
		}
		printFile(paths[f])
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i := range formats {
		formats[i] = strings.TrimSpace(formats[i])
	}
	return formats
}
