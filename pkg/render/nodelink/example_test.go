package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := graph.New()
	a := g.AddVertex(geom.Pt(0, 0))
	b := g.AddVertex(geom.Pt(1, 0))
	_, _ = g.AddEdge(a, b)

	dot := nodelink.ToDOT(g, nodelink.Options{Free: free.Edges(g)})
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// v0 -> v1 [dir=none, color="#ff9200", penwidth=2.5];
}
