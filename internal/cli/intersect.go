package cli

import (
	"github.com/spf13/cobra"
)

// intersectCommand creates the intersect command.
func (c *CLI) intersectCommand() *cobra.Command {
	var bf buildFlags
	var rf renderFlags
	var listEdges bool

	cmd := &cobra.Command{
		Use:   "intersect <points.toml>",
		Short: "Build the intersection graph of a point set's diagonals",
		Long: `Build the intersection graph of the diagonals of a point set. Every pair of
points becomes a vertex, and two diagonals that properly cross are joined by an
edge directed from the shorter to the longer one.

Results are cached by point set. Use --refresh to recompute or --no-cache to
bypass the cache.`,
		Example: `  planegraph intersect points.toml
  planegraph intersect points.toml --edges
  planegraph intersect points.toml -o crossings.svg --labels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bf.intersect = true
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			a := b.runner.Analyze(ctx, b.graph)
			printStats(b.graph.VertexCount(), b.graph.EdgeCount(), b.cached)
			printAnalysis(a)

			if listEdges {
				printNewline()
				printInfo("Crossings (shorter → longer)")
				for _, e := range b.graph.Edges() {
					printDetail("%s", edgeName(b.graph, e))
				}
			}

			if rf.output == "" {
				return nil
			}
			return c.renderTo(ctx, cmd, b, a.Free, &rf)
		},
	}

	bf.register(cmd, false)
	rf.register(cmd)
	cmd.Flags().BoolVar(&listEdges, "edges", false, "list every crossing")
	return cmd
}
