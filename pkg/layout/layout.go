package layout

import (
	"github.com/matzehuels/planegraph/pkg/components"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

// Result describes how Arrange grouped the components.
type Result struct {
	Isolated []graph.VertexID       // in discovery order, left to right
	Paths    [][]graph.VertexID     // each path from one end to the other
	Other    []components.Component // neither isolated nor a path
	Height   int                    // components with more than one vertex
}

// Rows returns the number of horizontal bands the layout occupies.
func (r Result) Rows() int {
	n := len(r.Paths) + len(r.Other)
	if len(r.Isolated) > 0 {
		n++
	}
	return n
}

// Arrange groups the components of g by kind and repositions every vertex.
//
//   - isolated vertex i of k goes to (i*Height/k, 0)
//   - the vertices of path i go to (0, i+1), (1, i+1), ... walking from a leaf
//   - other component i keeps its relative shape: x is scaled by Height and
//     y is shifted by len(Paths) + 1.5*i + 1
//
// Runs in O(N+E).
func Arrange(g *graph.Graph) Result {
	var r Result
	for _, c := range components.Connected(g) {
		switch components.Classify(g, c) {
		case components.Isolated:
			r.Isolated = append(r.Isolated, c[0])
		case components.Path:
			r.Paths = append(r.Paths, components.PathOrder(g, c))
			r.Height++
		default:
			r.Other = append(r.Other, c)
			r.Height++
		}
	}

	for i, id := range r.Isolated {
		x := float64(i) * float64(r.Height) / float64(len(r.Isolated))
		move(g, id, geom.Pt(x, 0))
	}

	for i, path := range r.Paths {
		for x, id := range path {
			move(g, id, geom.Pt(float64(x), float64(i+1)))
		}
	}

	shift := float64(len(r.Paths))
	for i, c := range r.Other {
		for _, id := range c {
			v, _ := g.Vertex(id)
			move(g, id, geom.Pt(v.X*float64(r.Height), v.Y+shift+1.5*float64(i)+1))
		}
	}
	return r
}

// move ignores the error: every id comes from Connected on the same graph.
func move(g *graph.Graph, id graph.VertexID, p geom.Point) {
	_ = g.MoveVertex(id, p)
}
