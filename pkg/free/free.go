// Package free finds the free edges of a straight-line drawing.
//
// An edge is free when no other edge of the same graph crosses it properly.
// Edges that merely share an endpoint, touch, or overlap collinearly do not
// disqualify each other.
package free

import (
	"slices"

	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

// Set is a set of edge ids. It has no defined iteration order; use Sorted
// for a stable listing.
type Set map[graph.EdgeID]struct{}

// Contains reports whether id is in s.
func (s Set) Contains(id graph.EdgeID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of edges in s.
func (s Set) Len() int { return len(s) }

// Sorted returns the members of s in ascending id order.
func (s Set) Sorted() []graph.EdgeID {
	out := make([]graph.EdgeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Edges returns the free edges of g.
//
// Every edge starts as a candidate; each unordered pair of edges that crosses
// properly removes both from the candidate set. Edges sharing an endpoint
// vertex are skipped without an orientation test. g is not modified.
// Runs in O(m²) for m edges.
func Edges(g *graph.Graph) Set {
	edges := g.Edges()
	segments := make([]geom.Segment, len(edges))
	candidates := make(Set, len(edges))
	for i, e := range edges {
		segments[i], _ = g.Segment(e.ID)
		candidates[e.ID] = struct{}{}
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if geom.ProperIntersectionShared(segments[i], segments[j], edges[i].SharesEndpoint(edges[j])) {
				delete(candidates, edges[i].ID)
				delete(candidates, edges[j].ID)
			}
		}
	}
	return candidates
}

// Crossings returns, for every edge of g, the number of other edges that
// cross it properly. Free edges map to zero. Runs in O(m²).
func Crossings(g *graph.Graph) map[graph.EdgeID]int {
	edges := g.Edges()
	segments := make([]geom.Segment, len(edges))
	counts := make(map[graph.EdgeID]int, len(edges))
	for i, e := range edges {
		segments[i], _ = g.Segment(e.ID)
		counts[e.ID] = 0
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if geom.ProperIntersectionShared(segments[i], segments[j], edges[i].SharesEndpoint(edges[j])) {
				counts[edges[i].ID]++
				counts[edges[j].ID]++
			}
		}
	}
	return counts
}
