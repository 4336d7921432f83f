package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var bf buildFlags
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "layout <points.toml>",
		Short: "Arrange the intersection graph by component",
		Long: `Build the intersection graph of a point set's diagonals and arrange it for
display: isolated diagonals on the bottom row, one row per path with its
members in order, and the remaining components stacked above.`,
		Example: `  planegraph layout points.toml
  planegraph layout points.toml -o layout.svg --labels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bf.intersect = true
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			res := b.runner.Layout(b.graph)
			// Crossings depend on the new positions.
			a := b.runner.Analyze(ctx, b.graph)

			printSuccess("Arranged %d components in %d rows", a.Summary.Components, res.Rows())
			printKeyValue("isolated", vertexList(b.graph, res.Isolated))
			for i, path := range res.Paths {
				printKeyValue(fmt.Sprintf("row %d", i+1), vertexList(b.graph, path))
			}
			for i, comp := range res.Other {
				printKeyValue(fmt.Sprintf("other %d", i), vertexList(b.graph, comp.Sorted()))
			}
			printStats(b.graph.VertexCount(), b.graph.EdgeCount(), b.cached)

			if rf.output == "" {
				return nil
			}
			return c.renderTo(ctx, cmd, b, a.Free, &rf)
		},
	}

	bf.register(cmd, false)
	rf.register(cmd)
	return cmd
}
