// Package layout places the components of a graph in rows for display.
//
// # Overview
//
// [Arrange] is meant for intersection graphs, whose vertices start at
// x = diagonal index and y = scaled diagonal length. It groups the connected
// components by shape and moves vertices so that each group gets its own band:
//
//   - isolated vertices are spread along y = 0
//   - each path is straightened onto its own row, one unit per vertex
//   - every other component keeps its shape, stretched horizontally and
//     lifted above the paths
//
// The graph is modified in place through [graph.Graph.MoveVertex], so change
// listeners see one VertexMoved event per vertex. Clone the graph first if the
// original coordinates are still needed.
package layout
