package free

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/udg"
)

// square returns the unit square with both diagonals: four sides that are
// free and two diagonals that cross.
func square(t *testing.T) (*graph.Graph, []graph.EdgeID, []graph.EdgeID) {
	t.Helper()
	g := graph.New()
	v := []graph.VertexID{
		g.AddVertex(geom.Pt(0, 0)),
		g.AddVertex(geom.Pt(1, 0)),
		g.AddVertex(geom.Pt(1, 1)),
		g.AddVertex(geom.Pt(0, 1)),
	}
	var sides, diagonals []graph.EdgeID
	for i := range 4 {
		id, err := g.AddEdge(v[i], v[(i+1)%4])
		if err != nil {
			t.Fatal(err)
		}
		sides = append(sides, id)
	}
	for _, p := range [][2]int{{0, 2}, {1, 3}} {
		id, err := g.AddEdge(v[p[0]], v[p[1]])
		if err != nil {
			t.Fatal(err)
		}
		diagonals = append(diagonals, id)
	}
	return g, sides, diagonals
}

func TestEdgesSquare(t *testing.T) {
	g, sides, diagonals := square(t)
	got := Edges(g)

	if got.Len() != 4 {
		t.Errorf("free edge count = %d, want 4", got.Len())
	}
	for _, id := range sides {
		if !got.Contains(id) {
			t.Errorf("side %d should be free", id)
		}
	}
	for _, id := range diagonals {
		if got.Contains(id) {
			t.Errorf("diagonal %d should not be free", id)
		}
	}
	if !slices.Equal(got.Sorted(), sides) {
		t.Errorf("Sorted = %v, want %v", got.Sorted(), sides)
	}
}

func TestEdgesEmpty(t *testing.T) {
	if got := Edges(graph.New()); got.Len() != 0 {
		t.Errorf("free edges of empty graph = %v", got.Sorted())
	}
}

func TestEdgesTouchingIsFree(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(geom.Pt(0, 0))
	b := g.AddVertex(geom.Pt(2, 0))
	c := g.AddVertex(geom.Pt(1, 0))
	d := g.AddVertex(geom.Pt(1, 2))
	e := g.AddVertex(geom.Pt(3, 0))
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(c, d) // T junction
	_, _ = g.AddEdge(c, e) // collinear overlap with a-b

	if got := Edges(g); got.Len() != 3 {
		t.Errorf("free edges = %v, want all 3", got.Sorted())
	}
}

func TestEdgesProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	for trial := range 10 {
		g := graph.New()
		for range 10 {
			g.AddVertex(geom.Pt(r.Float64()*3, r.Float64()*3))
		}
		if err := udg.Build(g, 1.2); err != nil {
			t.Fatal(err)
		}

		got := Edges(g)
		counts := Crossings(g)
		all := make(map[graph.EdgeID]bool)
		for _, e := range g.Edges() {
			all[e.ID] = true
		}

		for id := range got {
			if !all[id] {
				t.Errorf("trial %d: free edge %d not in graph", trial, id)
			}
			if counts[id] != 0 {
				t.Errorf("trial %d: free edge %d has %d crossings", trial, id, counts[id])
			}
		}
		for id, n := range counts {
			if n == 0 && !got.Contains(id) {
				t.Errorf("trial %d: uncrossed edge %d missing from free set", trial, id)
			}
		}
	}
}

func TestEdgesSubgraphConsistency(t *testing.T) {
	// Deleting non-free edges can only free more edges; every edge that was
	// free stays free.
	g, _, diagonals := square(t)
	before := Edges(g)

	sub := g.Clone()
	if err := sub.RemoveEdge(diagonals[0]); err != nil {
		t.Fatal(err)
	}
	after := Edges(sub)
	for id := range before {
		if !after.Contains(id) {
			t.Errorf("edge %d lost its free status", id)
		}
	}
	if !after.Contains(diagonals[1]) {
		t.Error("remaining diagonal should become free")
	}
}

func TestEdgesDoesNotMutate(t *testing.T) {
	g, _, _ := square(t)
	before := g.EdgeCount()
	_ = Edges(g)
	if g.EdgeCount() != before {
		t.Error("Edges modified the graph")
	}
}

func TestCrossings(t *testing.T) {
	g, sides, diagonals := square(t)
	counts := Crossings(g)

	for _, id := range sides {
		if counts[id] != 0 {
			t.Errorf("side %d crossings = %d, want 0", id, counts[id])
		}
	}
	for _, id := range diagonals {
		if counts[id] != 1 {
			t.Errorf("diagonal %d crossings = %d, want 1", id, counts[id])
		}
	}
}
