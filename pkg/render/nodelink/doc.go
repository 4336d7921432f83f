// Package nodelink draws geometric graphs as node-link diagrams.
//
// # Overview
//
// Vertices already have plane coordinates, so Graphviz is not asked to lay
// anything out: every node is pinned at its position and the neato engine
// only routes straight edges between them.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Free: free.Edges(g)})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Scale: points per plane unit (default 72)
//   - Free: edges drawn in the highlight colour
//   - Labels: draw vertex labels, falling back to the vertex id
//
// Invisible vertices and edges are left out, and so is every edge touching an
// invisible vertex. Directed edges are drawn with an arrowhead.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
