// Package geom provides the planar primitives the graph kernel is built on.
//
// # Points and Segments
//
// [Point] is a value type holding two finite coordinates. [Segment] joins two
// points and is the drawing of an edge or a diagonal.
//
// # Proper Intersection
//
// [ProperIntersection] reports whether two segments cross at a single point
// strictly inside both of them. Shared endpoints, touching at an endpoint and
// collinear overlap are not proper intersections. The predicate only looks at
// the signs of cross products ([Orient]); it never solves for the crossing
// point, so it does no division.
//
// Callers that know the two segments share an endpoint vertex (an edge pair
// incident to the same vertex, or two diagonals through the same input point)
// use [ProperIntersectionShared] to skip the orientation test entirely.
//
// # Distances
//
// [DistSq] and [SegmentDistSq] work on squared distances so that radius and
// tolerance comparisons need no square root.
package geom
