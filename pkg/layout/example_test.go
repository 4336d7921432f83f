package layout_test

import (
	"fmt"

	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/intersect"
	"github.com/matzehuels/planegraph/pkg/layout"
)

func ExampleArrange() {
	// The two diagonals of a convex quadrilateral cross; the four sides do not.
	points := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 3}}
	g := intersect.Compute(points)

	r := layout.Arrange(g)
	fmt.Println("isolated:", len(r.Isolated))
	fmt.Println("paths:", len(r.Paths))
	for _, id := range r.Paths[0] {
		v, _ := g.Vertex(id)
		fmt.Printf("%s at (%g, %g)\n", v.Label, v.X, v.Y)
	}
	// Output:
	// isolated: 4
	// paths: 1
	// 0-2 at (0, 1)
	// 1-3 at (1, 1)
}
