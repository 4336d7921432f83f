package graph

// EventKind classifies a graph mutation.
type EventKind int

const (
	VertexAdded EventKind = iota
	VertexRemoved
	VertexMoved
	// VertexChanged covers visibility and label updates.
	VertexChanged
	EdgeAdded
	EdgeRemoved
	EdgeChanged
	// EdgesCleared is sent once by ClearEdges instead of one EdgeRemoved per edge.
	EdgesCleared
)

var eventNames = [...]string{
	VertexAdded:   "vertex-added",
	VertexRemoved: "vertex-removed",
	VertexMoved:   "vertex-moved",
	VertexChanged: "vertex-changed",
	EdgeAdded:     "edge-added",
	EdgeRemoved:   "edge-removed",
	EdgeChanged:   "edge-changed",
	EdgesCleared:  "edges-cleared",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event describes one mutation. Vertex and Edge are -1 when not applicable.
type Event struct {
	Kind   EventKind
	Vertex VertexID
	Edge   EdgeID
}

// Listener is called synchronously after a mutation has been applied.
// Listeners must not mutate the graph they are subscribed to.
type Listener func(Event)

// Subscribe registers l and returns a function that unregisters it.
// Listeners run in registration order.
func (g *Graph) Subscribe(l Listener) (unsubscribe func()) {
	g.listeners = append(g.listeners, l)
	idx := len(g.listeners) - 1
	return func() {
		if idx < len(g.listeners) {
			g.listeners[idx] = nil
		}
	}
}

func (g *Graph) emit(ev Event) {
	for _, l := range g.listeners {
		if l != nil {
			l(ev)
		}
	}
}
