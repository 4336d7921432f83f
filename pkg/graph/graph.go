package graph

import (
	"slices"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/geom"
)

var (
	// ErrUnknownVertex is returned when a vertex id is not part of the graph.
	ErrUnknownVertex = errs.New(errs.ErrCodeNotFound, "unknown vertex")

	// ErrUnknownEdge is returned when an edge id is not part of the graph.
	ErrUnknownEdge = errs.New(errs.ErrCodeNotFound, "unknown edge")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex.
	ErrSelfLoop = errs.New(errs.ErrCodeInvalidArgument, "edge endpoints must be distinct")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the two vertices are
	// already connected, in either direction.
	ErrDuplicateEdge = errs.New(errs.ErrCodeInvalidArgument, "vertices are already connected")
)

// VertexID identifies a vertex within one graph. Ids are never reused.
type VertexID int

// EdgeID identifies an edge within one graph. Ids are never reused.
type EdgeID int

// Vertex is a snapshot of a vertex.
type Vertex struct {
	ID      VertexID
	X, Y    float64
	Visible bool
	Label   string
}

// Pos returns the vertex position as a point.
func (v Vertex) Pos() geom.Point { return geom.Pt(v.X, v.Y) }

// Edge is a snapshot of an edge. For directed edges A is the source and B the
// target; undirected edges store their endpoints in insertion order.
type Edge struct {
	ID       EdgeID
	A, B     VertexID
	Directed bool
	Visible  bool
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v VertexID) bool { return e.A == v || e.B == v }

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v VertexID) VertexID {
	if e.A == v {
		return e.B
	}
	return e.A
}

// SharesEndpoint reports whether e and f have a vertex in common.
func (e Edge) SharesEndpoint(f Edge) bool { return f.Has(e.A) || f.Has(e.B) }

type pairKey struct{ lo, hi VertexID }

func keyOf(a, b VertexID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Graph is a planar straight-line graph.
//
// The zero value is not usable - use New.
type Graph struct {
	vertices  map[VertexID]*Vertex
	order     []VertexID
	edges     map[EdgeID]*Edge
	edgeOrder []EdgeID
	incident  map[VertexID][]EdgeID
	pairs     map[pairKey]EdgeID

	nextVertex VertexID
	nextEdge   EdgeID

	listeners []Listener
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Edge),
		incident: make(map[VertexID][]EdgeID),
		pairs:    make(map[pairKey]EdgeID),
	}
}

// =============================================================================
// Vertices
// =============================================================================

// AddVertex adds a visible vertex at p and returns its id.
// Ids are handed out from zero upwards in call order.
func (g *Graph) AddVertex(p geom.Point) VertexID {
	id := g.nextVertex
	g.nextVertex++
	g.vertices[id] = &Vertex{ID: id, X: p.X, Y: p.Y, Visible: true}
	g.order = append(g.order, id)
	g.emit(Event{Kind: VertexAdded, Vertex: id, Edge: -1})
	return id
}

// RemoveVertex removes the vertex and every edge incident to it.
func (g *Graph) RemoveVertex(id VertexID) error {
	if _, ok := g.vertices[id]; !ok {
		return ErrUnknownVertex
	}
	for _, eid := range slices.Clone(g.incident[id]) {
		g.removeEdge(eid)
	}
	delete(g.vertices, id)
	delete(g.incident, id)
	g.order = slices.DeleteFunc(g.order, func(v VertexID) bool { return v == id })
	g.emit(Event{Kind: VertexRemoved, Vertex: id, Edge: -1})
	return nil
}

// MoveVertex sets the coordinates of a vertex. Edges follow automatically.
func (g *Graph) MoveVertex(id VertexID, p geom.Point) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrUnknownVertex
	}
	v.X, v.Y = p.X, p.Y
	g.emit(Event{Kind: VertexMoved, Vertex: id, Edge: -1})
	return nil
}

// SetVertexVisible sets the visibility flag of a vertex.
func (g *Graph) SetVertexVisible(id VertexID, visible bool) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrUnknownVertex
	}
	v.Visible = visible
	g.emit(Event{Kind: VertexChanged, Vertex: id, Edge: -1})
	return nil
}

// SetLabel attaches a display label to a vertex.
func (g *Graph) SetLabel(id VertexID, label string) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrUnknownVertex
	}
	v.Label = label
	g.emit(Event{Kind: VertexChanged, Vertex: id, Edge: -1})
	return nil
}

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

// HasVertex reports whether id names a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.order))
	for i, id := range g.order {
		out[i] = *g.vertices[id]
	}
	return out
}

// VertexIDs returns all vertex ids in insertion order.
func (g *Graph) VertexIDs() []VertexID { return slices.Clone(g.order) }

// Positions returns the vertex positions in insertion order.
func (g *Graph) Positions() []geom.Point {
	out := make([]geom.Point, len(g.order))
	for i, id := range g.order {
		out[i] = g.vertices[id].Pos()
	}
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// =============================================================================
// Edges
// =============================================================================

// AddEdge connects a and b with an undirected edge.
// Returns ErrUnknownVertex if either endpoint is missing, ErrSelfLoop if
// a == b and ErrDuplicateEdge if the pair is already connected.
func (g *Graph) AddEdge(a, b VertexID) (EdgeID, error) {
	return g.addEdge(a, b, false)
}

// AddDirectedEdge connects from and to with an edge directed from → to.
// The same restrictions as AddEdge apply; in particular an edge to → from
// counts as a duplicate.
func (g *Graph) AddDirectedEdge(from, to VertexID) (EdgeID, error) {
	return g.addEdge(from, to, true)
}

func (g *Graph) addEdge(a, b VertexID, directed bool) (EdgeID, error) {
	if _, ok := g.vertices[a]; !ok {
		return -1, ErrUnknownVertex
	}
	if _, ok := g.vertices[b]; !ok {
		return -1, ErrUnknownVertex
	}
	if a == b {
		return -1, ErrSelfLoop
	}
	key := keyOf(a, b)
	if _, exists := g.pairs[key]; exists {
		return -1, ErrDuplicateEdge
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge{ID: id, A: a, B: b, Directed: directed, Visible: true}
	g.edgeOrder = append(g.edgeOrder, id)
	g.incident[a] = append(g.incident[a], id)
	g.incident[b] = append(g.incident[b], id)
	g.pairs[key] = id
	g.emit(Event{Kind: EdgeAdded, Vertex: -1, Edge: id})
	return id, nil
}

// RemoveEdge removes a single edge.
func (g *Graph) RemoveEdge(id EdgeID) error {
	if _, ok := g.edges[id]; !ok {
		return ErrUnknownEdge
	}
	g.removeEdge(id)
	return nil
}

func (g *Graph) removeEdge(id EdgeID) {
	e := g.edges[id]
	delete(g.edges, id)
	delete(g.pairs, keyOf(e.A, e.B))
	drop := func(x EdgeID) bool { return x == id }
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, drop)
	g.incident[e.A] = slices.DeleteFunc(g.incident[e.A], drop)
	g.incident[e.B] = slices.DeleteFunc(g.incident[e.B], drop)
	g.emit(Event{Kind: EdgeRemoved, Vertex: -1, Edge: id})
}

// ClearEdges removes every edge and keeps all vertices.
// Listeners receive a single EdgesCleared event.
func (g *Graph) ClearEdges() {
	g.edges = make(map[EdgeID]*Edge)
	g.edgeOrder = nil
	g.incident = make(map[VertexID][]EdgeID, len(g.order))
	g.pairs = make(map[pairKey]EdgeID)
	g.emit(Event{Kind: EdgesCleared, Vertex: -1, Edge: -1})
}

// SetEdgeVisible sets the visibility flag of an edge.
func (g *Graph) SetEdgeVisible(id EdgeID, visible bool) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	e.Visible = visible
	g.emit(Event{Kind: EdgeChanged, Vertex: -1, Edge: id})
	return nil
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// EdgeBetween returns the edge joining a and b in either direction.
func (g *Graph) EdgeBetween(a, b VertexID) (Edge, bool) {
	id, ok := g.pairs[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}
	return *g.edges[id], true
}

// ContainsEdge reports whether a and b are connected, ignoring direction.
func (g *Graph) ContainsEdge(a, b VertexID) bool {
	_, ok := g.pairs[keyOf(a, b)]
	return ok
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = *g.edges[id]
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// Segment returns the straight-line drawing of an edge.
func (g *Graph) Segment(id EdgeID) (geom.Segment, bool) {
	e, ok := g.edges[id]
	if !ok {
		return geom.Segment{}, false
	}
	return geom.Seg(g.vertices[e.A].Pos(), g.vertices[e.B].Pos()), true
}

// =============================================================================
// Adjacency
// =============================================================================

// Neighbors returns the vertices adjacent to id, ignoring edge direction, in
// the order the connecting edges were added. Returns nil for an unknown id.
func (g *Graph) Neighbors(id VertexID) []VertexID {
	inc := g.incident[id]
	if len(inc) == 0 {
		return nil
	}
	out := make([]VertexID, len(inc))
	for i, eid := range inc {
		out[i] = g.edges[eid].Other(id)
	}
	return out
}

// IncidentEdges returns the ids of the edges touching id.
// The returned slice is a copy.
func (g *Graph) IncidentEdges(id VertexID) []EdgeID { return slices.Clone(g.incident[id]) }

// Degree returns the number of edges touching id, ignoring direction.
// Returns 0 for an unknown id.
func (g *Graph) Degree(id VertexID) int { return len(g.incident[id]) }

// =============================================================================
// Spatial Queries
// =============================================================================

// VertexAt returns the vertex closest to p whose distance is at most tol.
// Ties go to the earliest inserted vertex.
func (g *Graph) VertexAt(p geom.Point, tol float64) (VertexID, bool) {
	if tol < 0 {
		return -1, false
	}
	best, bestD := VertexID(-1), tol*tol
	found := false
	for _, id := range g.order {
		if d := geom.DistSq(p, g.vertices[id].Pos()); d <= bestD && (!found || d < bestD) {
			best, bestD, found = id, d, true
		}
	}
	return best, found
}

// EdgeAt returns the edge whose drawing passes closest to p, provided it is
// within tol. Ties go to the earliest inserted edge.
func (g *Graph) EdgeAt(p geom.Point, tol float64) (EdgeID, bool) {
	if tol < 0 {
		return -1, false
	}
	best, bestD := EdgeID(-1), tol*tol
	found := false
	for _, id := range g.edgeOrder {
		s, _ := g.Segment(id)
		if d := geom.SegmentDistSq(p, s); d <= bestD && (!found || d < bestD) {
			best, bestD, found = id, d, true
		}
	}
	return best, found
}

// Bounds returns the bounding box of all vertex positions, and false for an
// empty graph.
func (g *Graph) Bounds() (geom.Rect, bool) { return geom.Bounds(g.Positions()) }

// =============================================================================
// Copying
// =============================================================================

// Clone returns a deep copy of g with identical ids and iteration order.
// Listeners are not copied.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices:   make(map[VertexID]*Vertex, len(g.vertices)),
		order:      slices.Clone(g.order),
		edges:      make(map[EdgeID]*Edge, len(g.edges)),
		edgeOrder:  slices.Clone(g.edgeOrder),
		incident:   make(map[VertexID][]EdgeID, len(g.incident)),
		pairs:      make(map[pairKey]EdgeID, len(g.pairs)),
		nextVertex: g.nextVertex,
		nextEdge:   g.nextEdge,
	}
	for id, v := range g.vertices {
		vc := *v
		c.vertices[id] = &vc
	}
	for id, e := range g.edges {
		ec := *e
		c.edges[id] = &ec
	}
	for id, inc := range g.incident {
		c.incident[id] = slices.Clone(inc)
	}
	for k, id := range g.pairs {
		c.pairs[k] = id
	}
	return c
}
