// Package pkg provides the libraries behind planegraph, a toolkit for
// geometric graphs in the plane.
//
// # Overview
//
// A geometric graph is a graph whose vertices are points and whose edges are
// the straight segments between them. The pkg directory is organized into
// three areas:
//
//  1. Kernel - pure computation over point sets and graphs
//  2. Infrastructure - errors, caching, hooks, build info
//  3. Callers - orchestration and drawing
//
// # Architecture
//
// The typical data flow:
//
//	points
//	   ↓
//	[udg] unit disk graph          or   [intersect] intersection graph of diagonals
//	   ↓                                   ↓
//	[free] free edges, [components] connected components and their shapes
//	   ↓
//	[layout] component rows (intersection graphs)
//	   ↓
//	[render/nodelink] DOT/SVG/PNG/PDF
//
// # Main Packages
//
// ## Kernel
//
// [geom] - Points, segments, orientation and the proper-intersection predicate.
//
// [graph] - Mutable graph with stable integer ids, hit testing, change
// listeners and invariant checking.
//
// [intersect] - Builds the directed intersection graph of all diagonals of a
// point set, oriented from shorter to longer diagonal.
//
// [udg] - Rebuilds the edge set as the unit disk graph for a radius.
//
// [free] - Finds the edges that cross no other edge.
//
// [components] - Connected components and their classification as isolated
// vertex, simple path or other.
//
// [layout] - Places components in rows for display.
//
// ## Infrastructure
//
// [errors] - Structured error codes shared by every package.
//
// [cache] - File cache for intersection graphs.
//
// [observability] - Hooks for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
//
// ## Callers
//
// [pipeline] - Runner that chains the kernel with caching and logging, plus
// the Editor session model.
//
// [render/nodelink] - Graphviz drawing with pinned vertex positions.
package pkg
