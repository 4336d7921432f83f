// Package udg rebuilds the edge set of a graph as a unit disk graph.
//
// Two vertices are adjacent in the unit disk graph of radius r exactly when
// their distance is at most r. [Build] discards every existing edge and
// re-derives the edge set from the current vertex positions; it does not
// diff against the previous edges.
package udg

import (
	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

// DefaultRadius is the radius used by BuildDefault.
const DefaultRadius = 1.0

// Build replaces the edges of g with the unit disk graph of radius r.
//
// For every pair of vertices i < j in insertion order an undirected edge is
// added iff their squared distance is at most r². Vertices are untouched.
// An invalid radius is rejected with INVALID_ARGUMENT before any edge is
// removed.
//
// Build mutates g in place: callers must not read g's edges from another
// goroutine while it runs. Runs in O(n²).
func Build(g *graph.Graph, r float64) error {
	if err := errs.ValidateRadius(r); err != nil {
		return err
	}

	rr := r * r
	ids := g.VertexIDs()
	pos := g.Positions()

	g.ClearEdges()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if geom.DistSq(pos[i], pos[j]) > rr {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return errs.Wrap(errs.ErrCodeStructuralViolation, err, "add edge %d-%d", ids[i], ids[j])
			}
		}
	}
	return nil
}

// BuildDefault is Build with DefaultRadius.
func BuildDefault(g *graph.Graph) error {
	return Build(g, DefaultRadius)
}

// Neighborhood returns the ids of the vertices within distance r of p, in
// insertion order. It does not modify g.
func Neighborhood(g *graph.Graph, p geom.Point, r float64) []graph.VertexID {
	rr := r * r
	var out []graph.VertexID
	for _, v := range g.Vertices() {
		if geom.DistSq(p, v.Pos()) <= rr {
			out = append(out, v.ID)
		}
	}
	return out
}
