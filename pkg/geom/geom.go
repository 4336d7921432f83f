package geom

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// DistSq returns the squared Euclidean distance between p and q.
func DistSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 { return math.Sqrt(DistSq(p, q)) }

// Segment is the closed straight-line segment between A and B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{a, b}.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// LengthSq returns the squared length of s.
func (s Segment) LengthSq() float64 { return DistSq(s.A, s.B) }

// Length returns the length of s.
func (s Segment) Length() float64 { return Dist(s.A, s.B) }

// Orient returns twice the signed area of the triangle abc.
// It is positive when c lies to the left of the directed line a→b, negative
// when it lies to the right and zero when the three points are collinear.
func Orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// ProperIntersection reports whether s and t cross at a single point that is
// interior to both segments.
//
// Each segment must strictly separate the endpoints of the other: all four
// orientation tests are non-zero and of opposite sign pairwise. A zero
// orientation means an endpoint lies on the other segment's supporting line,
// which covers touching, shared endpoints and collinear overlap; none of those
// count. Degenerate (zero-length) segments never intersect properly.
func ProperIntersection(s, t Segment) bool {
	if s.A == t.A || s.A == t.B || s.B == t.A || s.B == t.B {
		return false
	}
	d1 := Orient(s.A, s.B, t.A)
	d2 := Orient(s.A, s.B, t.B)
	if d1*d2 >= 0 {
		return false
	}
	d3 := Orient(t.A, t.B, s.A)
	d4 := Orient(t.A, t.B, s.B)
	return d3*d4 < 0
}

// ProperIntersectionShared is ProperIntersection for callers that track
// endpoint identity. When shared is true the two segments meet at a common
// endpoint and cannot cross properly, so the orientation tests are skipped.
func ProperIntersectionShared(s, t Segment, shared bool) bool {
	if shared {
		return false
	}
	return ProperIntersection(s, t)
}

// SegmentDistSq returns the squared distance from p to the closest point of s.
func SegmentDistSq(p Point, s Segment) float64 {
	d := s.B.Sub(s.A)
	l := d.Dot(d)
	if l == 0 {
		return DistSq(p, s.A)
	}
	t := p.Sub(s.A).Dot(d) / l
	switch {
	case t <= 0:
		return DistSq(p, s.A)
	case t >= 1:
		return DistSq(p, s.B)
	}
	return DistSq(p, Point{s.A.X + t*d.X, s.A.Y + t*d.Y})
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the smallest Rect containing every point, and false when pts
// is empty.
func Bounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, true
}
