package intersect

import (
	"strconv"

	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

// Diagonal is the segment between input points I and J (I < J).
type Diagonal struct {
	I, J   int
	Vertex graph.VertexID // vertex representing the diagonal in the output graph
	Length float64        // scaled length key
}

// Before reports whether d orders before e: shorter first, then by
// enumeration order.
func (d Diagonal) Before(e Diagonal) bool {
	if d.Length != e.Length {
		return d.Length < e.Length
	}
	return d.Vertex < e.Vertex
}

// SharesPoint reports whether d and e have an input point in common.
func (d Diagonal) SharesPoint(e Diagonal) bool {
	return d.I == e.I || d.I == e.J || d.J == e.I || d.J == e.J
}

// LengthScale returns the factor n²/4 applied to diagonal lengths.
func LengthScale(n int) float64 {
	return float64(n) * float64(n) / 4
}

// Diagonals enumerates all pairs of points in (i, j), i < j order.
// The returned Vertex fields are the ids Compute assigns.
func Diagonals(points []geom.Point) []Diagonal {
	n := len(points)
	if n < 2 {
		return nil
	}
	scale := LengthScale(n)
	out := make([]Diagonal, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Diagonal{
				I:      i,
				J:      j,
				Vertex: graph.VertexID(len(out)),
				Length: geom.Dist(points[i], points[j]) * scale,
			})
		}
	}
	return out
}

// Compute returns the intersection graph of the diagonals of points.
//
// The result is a new graph with one vertex per diagonal and one directed
// edge per proper crossing, oriented from the shorter diagonal to the longer
// one. Fewer than two points yield an empty graph. Runs in O(n⁴).
func Compute(points []geom.Point) *graph.Graph {
	diagonals := Diagonals(points)
	g := graph.New()

	for _, d := range diagonals {
		id := g.AddVertex(geom.Pt(float64(d.Vertex), d.Length))
		_ = g.SetLabel(id, label(d))
	}

	segments := make([]geom.Segment, len(diagonals))
	for k, d := range diagonals {
		segments[k] = geom.Seg(points[d.I], points[d.J])
	}

	for a := 0; a < len(diagonals); a++ {
		for b := a + 1; b < len(diagonals); b++ {
			d1, d2 := diagonals[a], diagonals[b]
			if !geom.ProperIntersectionShared(segments[a], segments[b], d1.SharesPoint(d2)) {
				continue
			}
			from, to := d1, d2
			if d2.Before(d1) {
				from, to = d2, d1
			}
			// Each diagonal pair is visited once, so the edge cannot exist yet.
			_, _ = g.AddDirectedEdge(from.Vertex, to.Vertex)
		}
	}
	return g
}

// FromGraph computes the intersection graph of the vertex positions of g,
// taken in insertion order. g is not modified.
func FromGraph(g *graph.Graph) *graph.Graph {
	return Compute(g.Positions())
}

func label(d Diagonal) string {
	return strconv.Itoa(d.I) + "-" + strconv.Itoa(d.J)
}
