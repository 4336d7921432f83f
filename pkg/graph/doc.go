// Package graph provides the mutable geometric graph shared by every
// operation in planegraph.
//
// # Overview
//
// A [Graph] is an arena of vertices and edges addressed by stable integer ids.
// Vertices carry plane coordinates, a visibility flag and an optional label;
// edges join two distinct vertices and carry a direction flag and a
// visibility flag. Adjacency is stored as lists of edge ids, never as
// pointers, so moving a vertex cannot leave a stale reference behind.
//
// # Basic Usage
//
//	g := graph.New()
//	a := g.AddVertex(geom.Pt(0, 0))
//	b := g.AddVertex(geom.Pt(1, 0))
//	if _, err := g.AddEdge(a, b); err != nil {
//	    return err
//	}
//
// Query the structure with [Graph.Neighbors], [Graph.Degree],
// [Graph.Vertices] and [Graph.Edges]. Vertices and edges are returned by
// value; change them through [Graph.MoveVertex], [Graph.SetVertexVisible] and
// friends.
//
// # Invariants
//
//   - every edge's endpoints are vertices of the graph
//   - no self-loops
//   - at most one edge per unordered vertex pair, regardless of direction
//   - vertices and edges iterate in insertion order
//
// The mutators keep these invariants. [Graph.Validate] re-checks them and
// reports a STRUCTURAL_VIOLATION error when they do not hold.
//
// # Hit Testing
//
// [Graph.VertexAt] and [Graph.EdgeAt] find the element nearest to a point
// within a tolerance. They exist for interactive callers that translate a
// pointer position into a selection.
//
// # Change Listeners
//
// [Graph.Subscribe] registers a [Listener] that is invoked synchronously after
// each mutation, in registration order.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A caller that rebuilds the
// edge set (see package udg) must not let other goroutines read the graph at
// the same time.
package graph
