package components

import (
	"slices"

	"github.com/matzehuels/planegraph/pkg/graph"
)

// Kind is the shape of a connected component.
type Kind int

const (
	// Other is any component that is neither isolated nor a simple path.
	Other Kind = iota
	// Isolated is a component made of one vertex.
	Isolated
	// Path is a simple path with at least one edge.
	Path
)

func (k Kind) String() string {
	switch k {
	case Isolated:
		return "isolated"
	case Path:
		return "path"
	default:
		return "other"
	}
}

// Component is a set of vertex ids, stored in discovery order.
type Component []graph.VertexID

// Contains reports whether v belongs to c.
func (c Component) Contains(v graph.VertexID) bool { return slices.Contains(c, v) }

// Sorted returns a copy of c in ascending id order.
func (c Component) Sorted() []graph.VertexID {
	out := slices.Clone([]graph.VertexID(c))
	slices.Sort(out)
	return out
}

// Connected returns the connected components of g. Every vertex appears in
// exactly one component. Runs in O(N+E).
func Connected(g *graph.Graph) []Component {
	visited := make(map[graph.VertexID]bool, g.VertexCount())
	var out []Component

	for _, root := range g.VertexIDs() {
		if visited[root] {
			continue
		}
		visited[root] = true
		comp := Component{root}
		stack := []graph.VertexID{root}

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nv := range g.Neighbors(v) {
				if !visited[nv] {
					visited[nv] = true
					comp = append(comp, nv)
					stack = append(stack, nv)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// Classify returns the shape of component c of g. Degrees are taken from g,
// so c should be a component returned by Connected on the same graph.
func Classify(g *graph.Graph, c Component) Kind {
	if len(c) == 1 {
		return Isolated
	}
	if IsPath(g, c) {
		return Path
	}
	return Other
}

// IsPath reports whether every vertex of c has degree at most 2 and exactly
// two of them have degree 1.
func IsPath(g *graph.Graph, c Component) bool {
	leaves := 0
	for _, v := range c {
		switch d := g.Degree(v); {
		case d > 2:
			return false
		case d == 1:
			leaves++
			if leaves > 2 {
				return false
			}
		}
	}
	return leaves == 2
}

// Summary counts the components of a graph by kind.
type Summary struct {
	Components int
	Isolated   int
	Paths      int
	Other      int
	Largest    int // vertex count of the largest component
}

// Add counts one component of the given kind and size.
func (s *Summary) Add(kind Kind, size int) {
	s.Components++
	s.Largest = max(s.Largest, size)
	switch kind {
	case Isolated:
		s.Isolated++
	case Path:
		s.Paths++
	default:
		s.Other++
	}
}

// Summarize classifies every component of g.
func Summarize(g *graph.Graph) Summary {
	var s Summary
	for _, c := range Connected(g) {
		s.Add(Classify(g, c), len(c))
	}
	return s
}

// PathOrder returns the vertices of a path component from one end to the
// other, starting at the first leaf in c. It returns nil if c is not a path.
func PathOrder(g *graph.Graph, c Component) []graph.VertexID {
	if !IsPath(g, c) {
		return nil
	}
	var start graph.VertexID
	for _, v := range c {
		if g.Degree(v) == 1 {
			start = v
			break
		}
	}

	order := make([]graph.VertexID, 0, len(c))
	prev, cur := graph.VertexID(-1), start
	for {
		order = append(order, cur)
		next := graph.VertexID(-1)
		for _, nv := range g.Neighbors(cur) {
			if nv != prev {
				next = nv
				break
			}
		}
		if next < 0 {
			return order
		}
		prev, cur = cur, next
	}
}
