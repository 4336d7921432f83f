package graph

import (
	errs "github.com/matzehuels/planegraph/pkg/errors"
)

// Validate checks the graph invariants and returns nil if they hold.
//
// It verifies that every edge joins two distinct vertices of the graph, that
// no vertex pair is connected twice and that the adjacency lists agree with
// the edge set. A failure is reported with code STRUCTURAL_VIOLATION; graphs
// changed only through the mutators always pass.
//
// Runs in O(N+E).
func (g *Graph) Validate() error {
	if len(g.order) != len(g.vertices) {
		return errs.New(errs.ErrCodeStructuralViolation,
			"vertex order lists %d vertices, arena holds %d", len(g.order), len(g.vertices))
	}
	if len(g.edgeOrder) != len(g.edges) {
		return errs.New(errs.ErrCodeStructuralViolation,
			"edge order lists %d edges, arena holds %d", len(g.edgeOrder), len(g.edges))
	}

	seen := make(map[pairKey]EdgeID, len(g.edges))
	degree := make(map[VertexID]int, len(g.vertices))
	for _, id := range g.edgeOrder {
		e, ok := g.edges[id]
		if !ok {
			return errs.New(errs.ErrCodeStructuralViolation, "edge %d is listed but missing", id)
		}
		if _, ok := g.vertices[e.A]; !ok {
			return errs.Wrap(errs.ErrCodeStructuralViolation, ErrUnknownVertex, "edge %d references vertex %d", id, e.A)
		}
		if _, ok := g.vertices[e.B]; !ok {
			return errs.Wrap(errs.ErrCodeStructuralViolation, ErrUnknownVertex, "edge %d references vertex %d", id, e.B)
		}
		if e.A == e.B {
			return errs.Wrap(errs.ErrCodeStructuralViolation, ErrSelfLoop, "edge %d is a self-loop", id)
		}
		key := keyOf(e.A, e.B)
		if other, dup := seen[key]; dup {
			return errs.Wrap(errs.ErrCodeStructuralViolation, ErrDuplicateEdge, "edges %d and %d are parallel", other, id)
		}
		seen[key] = id
		if g.pairs[key] != id {
			return errs.New(errs.ErrCodeStructuralViolation, "pair index out of sync for edge %d", id)
		}
		degree[e.A]++
		degree[e.B]++
	}
	if len(g.pairs) != len(seen) {
		return errs.New(errs.ErrCodeStructuralViolation, "pair index holds %d entries for %d edges", len(g.pairs), len(seen))
	}

	for v, inc := range g.incident {
		if len(inc) == 0 {
			continue
		}
		if _, ok := g.vertices[v]; !ok {
			return errs.Wrap(errs.ErrCodeStructuralViolation, ErrUnknownVertex, "adjacency list for removed vertex %d", v)
		}
		for _, eid := range inc {
			e, ok := g.edges[eid]
			if !ok || !e.Has(v) {
				return errs.New(errs.ErrCodeStructuralViolation, "vertex %d lists foreign edge %d", v, eid)
			}
		}
	}
	for v, d := range degree {
		if got := len(g.incident[v]); got != d {
			return errs.New(errs.ErrCodeStructuralViolation, "vertex %d has %d incident edges, expected %d", v, got, d)
		}
	}
	return nil
}
