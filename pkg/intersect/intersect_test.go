package intersect

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

func randomPoints(r *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(r.Float64()*10, r.Float64()*10)
	}
	return pts
}

func TestComputeVertexCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n <= 8; n++ {
		g := Compute(randomPoints(r, n))
		want := n * (n - 1) / 2
		if got := g.VertexCount(); got != want {
			t.Errorf("n=%d: VertexCount = %d, want %d", n, got, want)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("n=%d: Validate: %v", n, err)
		}
	}
}

func TestComputeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Point
	}{
		{"nil", nil},
		{"single", []geom.Point{geom.Pt(1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.points)
			if g.VertexCount() != 0 || g.EdgeCount() != 0 {
				t.Errorf("got %d vertices, %d edges; want empty", g.VertexCount(), g.EdgeCount())
			}
		})
	}
}

func TestComputeConvexQuadrilateral(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(3, 2), geom.Pt(0, 1)}
	g := Compute(pts)

	if g.VertexCount() != 6 {
		t.Fatalf("VertexCount = %d, want 6", g.VertexCount())
	}
	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("EdgeCount = %d, want 1", len(edges))
	}

	// Diagonal 0-2 (id 1, length √13) is shorter than 1-3 (id 4, length √17).
	e := edges[0]
	if !e.Directed || e.A != 1 || e.B != 4 {
		t.Errorf("edge = %+v, want directed 1→4", e)
	}

	short, _ := g.Vertex(1)
	long, _ := g.Vertex(4)
	if short.Label != "0-2" || long.Label != "1-3" {
		t.Errorf("labels = %q, %q; want 0-2, 1-3", short.Label, long.Label)
	}
	if math.Abs(short.Y-math.Sqrt(13)*4) > 1e-9 {
		t.Errorf("length key = %g, want %g", short.Y, math.Sqrt(13)*4)
	}
	if short.X != 1 {
		t.Errorf("x = %g, want vertex id 1", short.X)
	}
}

func TestComputeTieBreak(t *testing.T) {
	// Both diagonals of a square have the same length; the one enumerated
	// first is the source.
	square := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}
	g := Compute(square)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("EdgeCount = %d, want 1", len(edges))
	}
	if edges[0].A != 1 || edges[0].B != 4 {
		t.Errorf("edge = %d→%d, want 1→4", edges[0].A, edges[0].B)
	}
}

func TestComputeCollinear(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(5, 5)}
	g := Compute(pts)

	if g.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", g.VertexCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0 for collinear points", g.EdgeCount())
	}
}

func TestComputeDuplicatePoints(t *testing.T) {
	pts := []geom.Point{geom.Pt(1, 1), geom.Pt(1, 1), geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2)}
	g := Compute(pts)

	if g.VertexCount() != 15 {
		t.Fatalf("VertexCount = %d, want 15", g.VertexCount())
	}
	// Diagonal 0-1 has zero length and crosses nothing.
	zero, _ := g.Vertex(0)
	if zero.Y != 0 {
		t.Errorf("zero diagonal key = %g, want 0", zero.Y)
	}
	if g.Degree(0) != 0 {
		t.Errorf("zero diagonal degree = %d, want 0", g.Degree(0))
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestComputeConvexPositionCount(t *testing.T) {
	// Every 4 points in convex position contribute exactly one crossing, so
	// n points on a convex curve give C(n, 4) edges.
	for n := 4; n <= 8; n++ {
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Pt(float64(i), float64(i*i))
		}
		want := n * (n - 1) * (n - 2) * (n - 3) / 24
		if got := Compute(pts).EdgeCount(); got != want {
			t.Errorf("n=%d: EdgeCount = %d, want %d", n, got, want)
		}
	}
}

func TestComputeEdgesMatchCrossings(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	pts := randomPoints(r, 7)
	diagonals := Diagonals(pts)
	g := Compute(pts)

	for a := range diagonals {
		for b := a + 1; b < len(diagonals); b++ {
			d1, d2 := diagonals[a], diagonals[b]
			cross := !d1.SharesPoint(d2) &&
				geom.ProperIntersection(geom.Seg(pts[d1.I], pts[d1.J]), geom.Seg(pts[d2.I], pts[d2.J]))
			if got := g.ContainsEdge(d1.Vertex, d2.Vertex); got != cross {
				t.Errorf("diagonals %v / %v: edge = %v, crossing = %v", d1, d2, got, cross)
			}
		}
	}

	for _, e := range g.Edges() {
		src, dst := diagonals[e.A], diagonals[e.B]
		if !src.Before(dst) {
			t.Errorf("edge %d→%d points from longer (%g) to shorter (%g)", e.A, e.B, src.Length, dst.Length)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	pts := randomPoints(r, 6)

	key := func(g *graph.Graph) [][2]graph.VertexID {
		var out [][2]graph.VertexID
		for _, e := range g.Edges() {
			out = append(out, [2]graph.VertexID{e.A, e.B})
		}
		return out
	}
	if !slices.Equal(key(Compute(pts)), key(Compute(pts))) {
		t.Error("Compute is not deterministic")
	}
}

func TestFromGraph(t *testing.T) {
	g := graph.New()
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(3, 2), geom.Pt(0, 1)} {
		g.AddVertex(p)
	}
	_, _ = g.AddEdge(0, 1)

	ig := FromGraph(g)
	if ig.VertexCount() != 6 || ig.EdgeCount() != 1 {
		t.Errorf("got %d vertices, %d edges; want 6, 1", ig.VertexCount(), ig.EdgeCount())
	}
	if g.EdgeCount() != 1 || g.VertexCount() != 4 {
		t.Error("FromGraph modified its input")
	}
}

func TestDiagonals(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(0, 4)}
	ds := Diagonals(pts)

	want := []Diagonal{
		{I: 0, J: 1, Vertex: 0, Length: 5 * 9.0 / 4},
		{I: 0, J: 2, Vertex: 1, Length: 4 * 9.0 / 4},
		{I: 1, J: 2, Vertex: 2, Length: 3 * 9.0 / 4},
	}
	if !slices.Equal(ds, want) {
		t.Errorf("Diagonals = %+v, want %+v", ds, want)
	}
	if LengthScale(4) != 4 {
		t.Errorf("LengthScale(4) = %g, want 4", LengthScale(4))
	}
}
