// Package components splits a graph into connected components and classifies
// each one by shape.
//
// # Components
//
// [Connected] partitions the vertices of a graph into maximal sets that are
// reachable from each other, ignoring edge direction. The traversal is a
// depth-first search with an explicit stack, so very long paths do not grow
// the goroutine stack. Components are listed in the insertion order of their
// first vertex.
//
// # Classification
//
// [Classify] assigns every component one [Kind]:
//
//   - [Isolated]: a single vertex
//   - [Path]: every vertex has degree at most 2 and exactly two have degree 1
//   - [Other]: anything else (cycles, branching trees, ...)
//
// Both functions are pure queries; neither touches vertex coordinates. See
// package layout for the positioning built on top of them.
package components
