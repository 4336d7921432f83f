package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/pipeline"
)

// renderFlags are the drawing flags shared by commands that can write files.
type renderFlags struct {
	output      string
	formats     string
	labels      bool
	noHighlight bool
	scale       float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "output file (extension replaced per format when several are given)")
	flags.StringVarP(&f.formats, "format", "f", "", "comma-separated output formats: dot, svg, png, pdf (default svg)")
	flags.BoolVar(&f.labels, "labels", false, "draw vertex labels")
	flags.BoolVar(&f.noHighlight, "no-highlight", false, "draw free edges like any other edge")
	flags.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "points per plane unit")
}

// renderOptions merges the config with the render flags the user set.
func (f *renderFlags) renderOptions(cmd *cobra.Command, base pipeline.Options) pipeline.Options {
	opts := base
	opts.Formats = parseFormats(f.formats)
	opts.Labels = f.labels
	if cmd.Flags().Changed("no-highlight") {
		opts.HighlightFree = !f.noHighlight
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = f.scale
	}
	return opts
}

// renderTo draws the built graph and writes one file per format.
func (c *CLI) renderTo(ctx context.Context, cmd *cobra.Command, b *built, freeSet free.Set, f *renderFlags) error {
	opts := f.renderOptions(cmd, b.opts)
	prog := newProgress(c.Logger)
	artifacts, err := b.runner.Render(ctx, b.graph, freeSet, opts)
	if err != nil {
		return err
	}
	prog.done("rendered graph", "formats", strings.Join(opts.Formats, ","))
	return writeArtifacts(artifacts, f.output, opts.Formats)
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var bf buildFlags
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render <points.toml>",
		Short: "Draw a graph with its free edges highlighted",
		Long: `Draw the unit disk graph of a point set, or the intersection graph of its
diagonals with --intersect. Vertices are pinned at their coordinates and free
edges are drawn in orange.`,
		Example: `  planegraph render points.toml -o graph.svg
  planegraph render points.toml --radius 1.5 -f svg,png -o graph
  planegraph render points.toml --intersect --labels -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			a := b.runner.Analyze(ctx, b.graph)
			printSuccess("Rendering %s", a)
			return c.renderTo(ctx, cmd, b, a.Free, &rf)
		},
	}

	bf.register(cmd, true)
	rf.register(cmd)
	return cmd
}
