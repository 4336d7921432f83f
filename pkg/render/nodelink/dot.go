package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/render"
)

// Colours used in drawings.
const (
	EdgeColor     = "#333333"
	FreeEdgeColor = "#ff9200"
	VertexColor   = "#1f3a93"
)

// DefaultScale is the number of points per plane unit.
const DefaultScale = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Scale is the number of points per plane unit. Zero means DefaultScale.
	Scale float64

	// Free holds the edges to highlight. A nil set highlights nothing.
	Free free.Set

	// Labels draws each vertex's label, or its id when the label is empty.
	// When false, vertices are drawn as plain dots.
	Labels bool
}

func (o Options) scale() float64 {
	if o.Scale > 0 {
		return o.Scale
	}
	return DefaultScale
}

// ToDOT converts a graph to Graphviz DOT format with every vertex pinned at
// its position. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	s := opts.scale()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, color=\"" + VertexColor + "\", fontsize=10, width=0.3, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, color=\"" + VertexColor + "\", width=0.08];\n")
	}
	buf.WriteString("  edge [color=\"" + EdgeColor + "\", penwidth=1.5, arrowsize=0.6];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if !v.Visible {
			continue
		}
		attrs := fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(v.X*s), fmtFloat(v.Y*s))
		if opts.Labels {
			attrs += fmt.Sprintf(", label=%q", vertexLabel(v))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(v.ID), attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if !drawable(g, e) {
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s", nodeID(e.A), nodeID(e.B))
		if attrs := edgeAttrs(e, opts.Free); attrs != "" {
			fmt.Fprintf(&buf, " [%s]", attrs)
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id graph.VertexID) string {
	return "v" + strconv.Itoa(int(id))
}

func vertexLabel(v graph.Vertex) string {
	if v.Label != "" {
		return v.Label
	}
	return strconv.Itoa(int(v.ID))
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func drawable(g *graph.Graph, e graph.Edge) bool {
	if !e.Visible {
		return false
	}
	a, _ := g.Vertex(e.A)
	b, _ := g.Vertex(e.B)
	return a.Visible && b.Visible
}

func edgeAttrs(e graph.Edge, freeSet free.Set) string {
	attrs := ""
	if !e.Directed {
		attrs = "dir=none"
	}
	if freeSet.Contains(e.ID) {
		if attrs != "" {
			attrs += ", "
		}
		attrs += fmt.Sprintf("color=%q, penwidth=2.5", FreeEdgeColor)
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine, which
// keeps pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
