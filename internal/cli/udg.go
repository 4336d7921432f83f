package cli

import (
	"github.com/spf13/cobra"
)

// udgCommand creates the udg command.
func (c *CLI) udgCommand() *cobra.Command {
	var bf buildFlags
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "udg <points.toml>",
		Short: "Build the unit disk graph of a point set",
		Long: `Build the unit disk graph of a point set: two points are joined when their
distance is at most the radius. Prints the edge count, the free edges and the
component shapes. With --output the graph is also drawn.`,
		Example: `  planegraph udg points.toml
  planegraph udg points.toml --radius 0.5 -o udg.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			a := b.runner.Analyze(ctx, b.graph)
			printSuccess("Unit disk graph with radius %g", b.opts.Radius)
			printStats(b.graph.VertexCount(), b.graph.EdgeCount(), false)
			printAnalysis(a)

			if rf.output == "" {
				printNewline()
				printNextStep("Draw it", "planegraph render "+args[0])
				return nil
			}
			return c.renderTo(ctx, cmd, b, a.Free, &rf)
		},
	}

	bf.register(cmd, false)
	rf.register(cmd)
	return cmd
}
