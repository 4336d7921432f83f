package pipeline

import (
	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/udg"
)

// SelectionKind tells what a Selection refers to.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectVertex
	SelectEdge
)

// Selection is the current selection of an Editor. At most one vertex or one
// edge is selected, never both.
type Selection struct {
	Kind   SelectionKind
	Vertex graph.VertexID // valid when Kind == SelectVertex
	Edge   graph.EdgeID   // valid when Kind == SelectEdge
}

// SelectionListener is called after the selection changes.
type SelectionListener func(Selection)

// ChangeListener is called after the graph has been rebuilt.
type ChangeListener func(*Editor)

// Editor holds the state of an interactive editing session.
//
// The edge set of the graph is owned by the editor: after every structural
// change it is replaced by the unit disk graph for the current radius and the
// free edges are recomputed. Listeners run synchronously, in registration
// order, on the goroutine that made the change.
type Editor struct {
	g         *graph.Graph
	radius    float64
	free      free.Set
	highlight bool
	sel       Selection

	// selected edge endpoints; edge ids do not survive a rebuild
	selA, selB graph.VertexID

	selectionListeners []SelectionListener
	changeListeners    []ChangeListener
}

// NewEditor starts a session on g, or on an empty graph when g is nil.
// The edges of g are replaced by its unit disk graph.
func NewEditor(g *graph.Graph, radius float64) (*Editor, error) {
	if err := errs.ValidateRadius(radius); err != nil {
		return nil, err
	}
	if g == nil {
		g = graph.New()
	}
	e := &Editor{
		g:         g,
		radius:    radius,
		highlight: true,
		sel:       Selection{Kind: SelectNone, Vertex: -1, Edge: -1},
	}
	if err := e.update(); err != nil {
		return nil, err
	}
	return e, nil
}

// Graph returns the graph being edited. Changing its vertices directly
// bypasses the rebuild; use the Editor methods instead.
func (e *Editor) Graph() *graph.Graph { return e.g }

// Radius returns the current unit disk radius.
func (e *Editor) Radius() float64 { return e.radius }

// Free returns the current free edges.
func (e *Editor) Free() free.Set { return e.free }

// Highlighted returns the free edges to draw highlighted: the free set when
// highlighting is on, nil otherwise.
func (e *Editor) Highlighted() free.Set {
	if !e.highlight {
		return nil
	}
	return e.free
}

// Highlight reports whether free edges are highlighted.
func (e *Editor) Highlight() bool { return e.highlight }

// SetHighlight toggles free-edge highlighting. The graph is not rebuilt.
func (e *Editor) SetHighlight(on bool) { e.highlight = on }

// Selection returns the current selection.
func (e *Editor) Selection() Selection { return e.sel }

// OnSelect registers l for selection changes and returns a function that
// removes it.
func (e *Editor) OnSelect(l SelectionListener) (unsubscribe func()) {
	e.selectionListeners = append(e.selectionListeners, l)
	idx := len(e.selectionListeners) - 1
	return func() { e.selectionListeners[idx] = nil }
}

// OnChange registers l for graph rebuilds and returns a function that
// removes it.
func (e *Editor) OnChange(l ChangeListener) (unsubscribe func()) {
	e.changeListeners = append(e.changeListeners, l)
	idx := len(e.changeListeners) - 1
	return func() { e.changeListeners[idx] = nil }
}

// =============================================================================
// Structural changes
// =============================================================================

// SetRadius changes the radius and rebuilds. An invalid radius leaves the
// session unchanged.
func (e *Editor) SetRadius(r float64) error {
	if err := errs.ValidateRadius(r); err != nil {
		return err
	}
	e.radius = r
	return e.update()
}

// SetGraph replaces the graph being edited, clears the selection and rebuilds.
func (e *Editor) SetGraph(g *graph.Graph) error {
	if g == nil {
		g = graph.New()
	}
	e.g = g
	e.Deselect()
	return e.update()
}

// AddVertex adds a vertex at p, rebuilds and selects the new vertex.
func (e *Editor) AddVertex(p geom.Point) (graph.VertexID, error) {
	if err := errs.ValidateCoordinate(e.g.VertexCount(), p.X, p.Y); err != nil {
		return -1, err
	}
	id := e.g.AddVertex(p)
	if err := e.update(); err != nil {
		return id, err
	}
	e.SelectVertex(id)
	return id, nil
}

// MoveVertex moves a vertex and rebuilds.
func (e *Editor) MoveVertex(id graph.VertexID, p geom.Point) error {
	if err := errs.ValidateCoordinate(int(id), p.X, p.Y); err != nil {
		return err
	}
	if err := e.g.MoveVertex(id, p); err != nil {
		return err
	}
	return e.update()
}

// MoveSelected moves the selected vertex. It does nothing unless a vertex is
// selected.
func (e *Editor) MoveSelected(p geom.Point) error {
	if e.sel.Kind != SelectVertex {
		return nil
	}
	return e.MoveVertex(e.sel.Vertex, p)
}

// RemoveVertex removes a vertex and rebuilds. If the vertex was selected, the
// selection is cleared.
func (e *Editor) RemoveVertex(id graph.VertexID) error {
	if err := e.g.RemoveVertex(id); err != nil {
		return err
	}
	// Change listeners must never see a selection of a vertex that is gone.
	if e.sel.Kind == SelectVertex && e.sel.Vertex == id {
		e.Deselect()
	}
	return e.update()
}

// DeleteSelected removes the selected vertex. It reports false when no vertex
// is selected.
func (e *Editor) DeleteSelected() (bool, error) {
	if e.sel.Kind != SelectVertex {
		return false, nil
	}
	return true, e.RemoveVertex(e.sel.Vertex)
}

// Click selects what lies under p: the nearest vertex within tol, else the
// nearest edge within tol. Clicking empty space adds a vertex there and
// selects it. Vertices take precedence over edges.
func (e *Editor) Click(p geom.Point, tol float64) (Selection, error) {
	if err := errs.ValidateTolerance(tol); err != nil {
		return e.sel, err
	}
	if v, ok := e.g.VertexAt(p, tol); ok {
		e.SelectVertex(v)
		return e.sel, nil
	}
	if id, ok := e.g.EdgeAt(p, tol); ok {
		e.SelectEdge(id)
		return e.sel, nil
	}
	if _, err := e.AddVertex(p); err != nil {
		return e.sel, err
	}
	return e.sel, nil
}

// =============================================================================
// Selection
// =============================================================================

// SelectVertex selects a vertex, clearing any edge selection. Listeners are
// notified only if the selection changes. Unknown ids are ignored.
func (e *Editor) SelectVertex(id graph.VertexID) {
	if !e.g.HasVertex(id) {
		return
	}
	e.setSelection(Selection{Kind: SelectVertex, Vertex: id, Edge: -1})
}

// SelectEdge selects an edge, clearing any vertex selection. Listeners are
// notified only if the selection changes. Unknown ids are ignored.
func (e *Editor) SelectEdge(id graph.EdgeID) {
	edge, ok := e.g.Edge(id)
	if !ok {
		return
	}
	e.selA, e.selB = edge.A, edge.B
	e.setSelection(Selection{Kind: SelectEdge, Vertex: -1, Edge: id})
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.setSelection(Selection{Kind: SelectNone, Vertex: -1, Edge: -1})
}

func (e *Editor) setSelection(s Selection) {
	if s == e.sel || (s.Kind == SelectNone && e.sel.Kind == SelectNone) {
		return
	}
	e.sel = s
	for _, l := range e.selectionListeners {
		if l != nil {
			l(s)
		}
	}
}

// =============================================================================
// Rebuild
// =============================================================================

// update rebuilds the unit disk graph, recomputes free edges and notifies
// change listeners. A selected edge is carried over to the rebuilt edge
// between the same vertices without a selection event, or deselected if
// there is none.
func (e *Editor) update() error {
	if err := udg.Build(e.g, e.radius); err != nil {
		return err
	}
	e.free = free.Edges(e.g)

	if e.sel.Kind == SelectEdge {
		if edge, ok := e.g.EdgeBetween(e.selA, e.selB); ok {
			e.sel.Edge = edge.ID
		} else {
			e.Deselect()
		}
	}

	for _, l := range e.changeListeners {
		if l != nil {
			l(e)
		}
	}
	return nil
}
