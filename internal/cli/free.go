package cli

import (
	"github.com/spf13/cobra"
)

// freeCommand creates the free command.
func (c *CLI) freeCommand() *cobra.Command {
	var bf buildFlags

	cmd := &cobra.Command{
		Use:   "free <points.toml>",
		Short: "List the edges that cross no other edge",
		Long: `List the free edges of the unit disk graph of a point set, or of the
intersection graph with --intersect. An edge is free when no other edge
properly crosses it; edges that only share an endpoint do not cross.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			a := b.runner.Analyze(ctx, b.graph)
			printSuccess("%d of %d edges are free", a.Free.Len(), b.graph.EdgeCount())
			printFreeEdges(b.graph, a)
			return nil
		},
	}

	bf.register(cmd, true)
	return cmd
}
