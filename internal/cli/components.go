package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	var bf buildFlags

	cmd := &cobra.Command{
		Use:     "components <points.toml>",
		Aliases: []string{"comp"},
		Short:   "Classify the connected components of a graph",
		Long: `Split the unit disk graph of a point set (or the intersection graph with
--intersect) into connected components and classify each as an isolated
vertex, a simple path or other. Path members are listed end to end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			a := b.runner.Analyze(ctx, b.graph)
			printSuccess("%d components", a.Summary.Components)
			if a.Summary.Components == 0 {
				return nil
			}
			fmt.Println(componentTable(b.graph, a))
			return nil
		},
	}

	bf.register(cmd, true)
	return cmd
}
