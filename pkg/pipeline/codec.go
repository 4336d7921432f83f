package pipeline

import (
	"encoding/json"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
)

// cachedGraph is the cache representation of a graph. Vertices are stored in
// insertion order and edges refer to them by position, so decoding into a
// fresh graph reproduces the original ids.
type cachedGraph struct {
	Vertices []cachedVertex `json:"vertices"`
	Edges    []cachedEdge   `json:"edges"`
}

type cachedVertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

type cachedEdge struct {
	A        int  `json:"a"`
	B        int  `json:"b"`
	Directed bool `json:"directed,omitempty"`
}

// marshalGraph serializes g for the cache.
func marshalGraph(g *graph.Graph) ([]byte, error) {
	index := make(map[graph.VertexID]int, g.VertexCount())
	var cg cachedGraph
	for i, v := range g.Vertices() {
		index[v.ID] = i
		cg.Vertices = append(cg.Vertices, cachedVertex{X: v.X, Y: v.Y, Label: v.Label})
	}
	for _, e := range g.Edges() {
		cg.Edges = append(cg.Edges, cachedEdge{A: index[e.A], B: index[e.B], Directed: e.Directed})
	}
	return json.Marshal(cg)
}

// unmarshalGraph rebuilds a graph written by marshalGraph.
func unmarshalGraph(data []byte) (*graph.Graph, error) {
	var cg cachedGraph
	if err := json.Unmarshal(data, &cg); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode cached graph")
	}

	g := graph.New()
	ids := make([]graph.VertexID, len(cg.Vertices))
	for i, v := range cg.Vertices {
		ids[i] = g.AddVertex(geom.Pt(v.X, v.Y))
		if v.Label != "" {
			_ = g.SetLabel(ids[i], v.Label)
		}
	}
	for _, e := range cg.Edges {
		if e.A < 0 || e.A >= len(ids) || e.B < 0 || e.B >= len(ids) {
			return nil, errs.New(errs.ErrCodeInvalidInput, "cached edge %d-%d out of range", e.A, e.B)
		}
		var err error
		if e.Directed {
			_, err = g.AddDirectedEdge(ids[e.A], ids[e.B])
		} else {
			_, err = g.AddEdge(ids[e.A], ids[e.B])
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "cached edge %d-%d", e.A, e.B)
		}
	}
	return g, nil
}
