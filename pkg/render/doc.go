// Package render turns geometric graphs into images.
//
// # Overview
//
// Drawing is a caller concern: nothing in the kernel packages depends on this
// one. It provides:
//
//   - Node-link drawings with pinned vertex positions (in [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
package render
