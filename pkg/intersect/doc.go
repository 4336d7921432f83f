// Package intersect builds the intersection graph of the diagonals of a
// point set.
//
// # Diagonals
//
// Every unordered pair of input points is a diagonal, so n points give
// n(n-1)/2 diagonals, including the pairs that would be called sides of the
// convex hull. Each diagonal becomes one vertex of the output graph. Vertex
// ids follow the enumeration order (0,1), (0,2), ..., (0,n-1), (1,2), ...,
// which makes the output reproducible for a given input order.
//
// # Length Key
//
// A diagonal vertex is placed at x = id and y = length key, where the key is
// the Euclidean length of the diagonal multiplied by n²/4. The factor is a
// normalisation kept for display; only the order it induces matters.
//
// # Crossings
//
// Two diagonals are joined by an edge when they cross properly (see
// [geom.ProperIntersection]). Diagonals through a common input point never
// cross. Edges are directed from the shorter diagonal to the longer one; when
// the keys are equal the diagonal enumerated first is the source.
//
// # Cost
//
// [Compute] tests every pair of diagonals: O(n⁴) time and O(n²) memory plus
// one edge per crossing. This is the binding cost for large point sets;
// callers should bound n themselves.
package intersect
