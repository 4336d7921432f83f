package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/pipeline"
	"github.com/matzehuels/planegraph/pkg/udg"
)

// queryCommand creates the query command.
func (c *CLI) queryCommand() *cobra.Command {
	var (
		bf        buildFlags
		rf        renderFlags
		at        string
		tolerance float64
		add       bool
	)

	cmd := &cobra.Command{
		Use:   "query <points.toml> --at x,y",
		Short: "Report the vertex or edge at a position",
		Long: `Report the vertex or edge of a graph nearest to a position. Vertices take
precedence over edges. The hit tolerance defaults to hit_tolerance from the
config file. On the unit disk graph, a position that hits nothing reports the
vertices within the radius, which are the neighbours a vertex there would get.

With --add, a position that hits nothing becomes a new vertex of the unit disk
graph, and the graph is rebuilt around it.`,
		Example: `  planegraph query points.toml --at 0.5,0.5
  planegraph query points.toml --at 3,1 --add -o edited.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(at)
			if err != nil {
				return err
			}
			tol := c.Config.HitTolerance
			if cmd.Flags().Changed("tolerance") {
				tol = tolerance
			}
			if err := errs.ValidateTolerance(tol); err != nil {
				return err
			}
			if add && bf.intersect {
				return errs.New(errs.ErrCodeInvalidArgument, "--add edits the unit disk graph and cannot be combined with --intersect")
			}

			ctx := cmd.Context()
			b, err := c.build(ctx, cmd, args[0], &bf)
			if err != nil {
				return err
			}
			defer b.runner.Close()

			if add {
				return c.clickAt(ctx, cmd, b, p, tol, &rf)
			}
			a := b.runner.Analyze(ctx, b.graph)
			radius := b.opts.Radius
			if bf.intersect {
				radius = 0
			}
			reportHit(b.graph, a.Free, p, tol, radius)
			return nil
		},
	}

	bf.register(cmd, true)
	rf.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "query position as x,y")
	cmd.Flags().Float64Var(&tolerance, "tolerance", defaultHitTolerance, "hit distance in plane units")
	cmd.Flags().BoolVar(&add, "add", false, "add a vertex when nothing is hit")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

// clickAt applies an editor click at p: it selects what is hit, or adds a
// vertex and rebuilds the unit disk graph.
func (c *CLI) clickAt(ctx context.Context, cmd *cobra.Command, b *built, p geom.Point, tol float64, rf *renderFlags) error {
	editor, err := pipeline.NewEditor(b.graph, b.opts.Radius)
	if err != nil {
		return err
	}
	editor.SetHighlight(rf.renderOptions(cmd, b.opts).HighlightFree)

	before := b.graph.Clone()
	sel, err := editor.Click(p, tol)
	if err != nil {
		return err
	}
	if b.graph.VertexCount() > before.VertexCount() {
		printSuccess("Added %s at (%g, %g)", vertexName(b.graph, sel.Vertex), p.X, p.Y)
		printStats(b.graph.VertexCount(), b.graph.EdgeCount(), false)
		printKeyValue("new edges", strconv.Itoa(len(addedEdges(before, b.graph))))
		printKeyValue("free edges", strconv.Itoa(editor.Free().Len()))
	} else {
		reportHit(b.graph, editor.Free(), p, tol, editor.Radius())
	}

	if rf.output == "" {
		return nil
	}
	return c.renderTo(ctx, cmd, b, editor.Highlighted(), rf)
}

// addedEdges returns the edges of after whose endpoints are not joined in before.
func addedEdges(before, after *graph.Graph) []graph.Edge {
	var added []graph.Edge
	for _, e := range after.Edges() {
		if !before.ContainsEdge(e.A, e.B) {
			added = append(added, e)
		}
	}
	return added
}

// freeIncident counts the free edges touching id.
func freeIncident(g *graph.Graph, freeSet free.Set, id graph.VertexID) int {
	n := 0
	for _, e := range g.IncidentEdges(id) {
		if freeSet.Contains(e) {
			n++
		}
	}
	return n
}

// reportHit prints the vertex or edge of g within tol of p. When nothing is
// hit and radius is positive, the vertices within radius of p are listed.
func reportHit(g *graph.Graph, freeSet free.Set, p geom.Point, tol, radius float64) {
	if id, ok := g.VertexAt(p, tol); ok {
		v, _ := g.Vertex(id)
		printSuccess("Vertex %s", vertexName(g, id))
		printKeyValue("position", strconv.FormatFloat(v.X, 'g', -1, 64)+", "+strconv.FormatFloat(v.Y, 'g', -1, 64))
		printKeyValue("degree", strconv.Itoa(g.Degree(id)))
		printKeyValue("free edges", strconv.Itoa(freeIncident(g, freeSet, id)))
		names := make([]string, 0, g.Degree(id))
		for _, n := range g.Neighbors(id) {
			names = append(names, vertexName(g, n))
		}
		if len(names) > 0 {
			printKeyValue("neighbors", strings.Join(names, " "))
		}
		return
	}
	if id, ok := g.EdgeAt(p, tol); ok {
		e, _ := g.Edge(id)
		printSuccess("Edge %s", edgeName(g, e))
		if freeSet.Contains(id) {
			printKeyValue("free", styleFree.Render("yes"))
		} else {
			printKeyValue("crossings", strconv.Itoa(free.Crossings(g)[id]))
		}
		return
	}
	printWarning("Nothing within %g of (%g, %g)", tol, p.X, p.Y)
	if radius <= 0 {
		return
	}
	if near := udg.Neighborhood(g, p, radius); len(near) > 0 {
		printKeyValue("within r", vertexList(g, near))
	}
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, errs.New(errs.ErrCodeInvalidArgument, "position %q is not of the form x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, errs.Wrap(errs.ErrCodeInvalidArgument, err, "parse x of %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, errs.Wrap(errs.ErrCodeInvalidArgument, err, "parse y of %q", s)
	}
	if err := errs.ValidateCoordinate(0, x, y); err != nil {
		return geom.Point{}, errs.Wrap(errs.ErrCodeInvalidArgument, err, "position %q", s)
	}
	return geom.Pt(x, y), nil
}
