package geom

import (
	"math"
	"testing"
)

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    int
	}{
		{"left turn", Pt(0, 0), Pt(1, 0), Pt(0, 1), 1},
		{"right turn", Pt(0, 0), Pt(1, 0), Pt(0, -1), -1},
		{"collinear", Pt(0, 0), Pt(1, 1), Pt(3, 3), 0},
		{"coincident", Pt(2, 2), Pt(2, 2), Pt(5, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orient(tt.a, tt.b, tt.c)
			var sign int
			switch {
			case got > 0:
				sign = 1
			case got < 0:
				sign = -1
			}
			if sign != tt.want {
				t.Errorf("Orient(%v, %v, %v) = %g, want sign %d", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestProperIntersection(t *testing.T) {
	tests := []struct {
		name string
		s, u Segment
		want bool
	}{
		{"X crossing", Seg(Pt(0, 0), Pt(2, 2)), Seg(Pt(0, 2), Pt(2, 0)), true},
		{"quad diagonals", Seg(Pt(0, 0), Pt(3, 1)), Seg(Pt(1, -1), Pt(1, 2)), true},
		{"disjoint", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(0, 1), Pt(1, 1)), false},
		{"shared endpoint", Seg(Pt(0, 0), Pt(1, 1)), Seg(Pt(1, 1), Pt(2, 0)), false},
		{"shared endpoint reversed", Seg(Pt(1, 1), Pt(0, 0)), Seg(Pt(2, 0), Pt(1, 1)), false},
		{"T junction", Seg(Pt(0, 0), Pt(2, 0)), Seg(Pt(1, 0), Pt(1, 2)), false},
		{"endpoint touches interior", Seg(Pt(0, 0), Pt(2, 0)), Seg(Pt(1, -1), Pt(1, 0)), false},
		{"collinear overlap", Seg(Pt(0, 0), Pt(2, 0)), Seg(Pt(1, 0), Pt(3, 0)), false},
		{"collinear disjoint", Seg(Pt(0, 0), Pt(1, 0)), Seg(Pt(2, 0), Pt(3, 0)), false},
		{"identical", Seg(Pt(0, 0), Pt(1, 1)), Seg(Pt(0, 0), Pt(1, 1)), false},
		{"lines cross outside", Seg(Pt(0, 0), Pt(1, 1)), Seg(Pt(3, 0), Pt(2, 1)), false},
		{"zero length", Seg(Pt(1, 1), Pt(1, 1)), Seg(Pt(0, 2), Pt(2, 0)), false},
		{"parallel", Seg(Pt(0, 0), Pt(2, 2)), Seg(Pt(1, 0), Pt(3, 2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProperIntersection(tt.s, tt.u); got != tt.want {
				t.Errorf("ProperIntersection(%v, %v) = %v, want %v", tt.s, tt.u, got, tt.want)
			}
			// The predicate is symmetric in both argument order and endpoint order.
			if got := ProperIntersection(tt.u, tt.s); got != tt.want {
				t.Errorf("ProperIntersection swapped = %v, want %v", got, tt.want)
			}
			rev := Seg(tt.s.B, tt.s.A)
			if got := ProperIntersection(rev, tt.u); got != tt.want {
				t.Errorf("ProperIntersection reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProperIntersectionShared(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(2, 2))
	u := Seg(Pt(0, 2), Pt(2, 0))

	if !ProperIntersectionShared(s, u, false) {
		t.Error("crossing segments without shared endpoint should intersect")
	}
	if ProperIntersectionShared(s, u, true) {
		t.Error("shared endpoint must short-circuit to false")
	}
}

func TestSegmentDistSq(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(4, 0))
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above interior", Pt(2, 3), 9},
		{"on segment", Pt(1, 0), 0},
		{"before A", Pt(-1, 1), 2},
		{"after B", Pt(7, 4), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentDistSq(tt.p, s); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SegmentDistSq(%v) = %g, want %g", tt.p, got, tt.want)
			}
		})
	}

	if got := SegmentDistSq(Pt(3, 4), Seg(Pt(0, 0), Pt(0, 0))); got != 25 {
		t.Errorf("degenerate segment distance = %g, want 25", got)
	}
}

func TestDist(t *testing.T) {
	if got := DistSq(Pt(0, 0), Pt(3, 4)); got != 25 {
		t.Errorf("DistSq = %g, want 25", got)
	}
	if got := Dist(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Errorf("Dist = %g, want 5", got)
	}
	if got := Seg(Pt(1, 1), Pt(4, 5)).Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) should report false")
	}

	r, ok := Bounds([]Point{Pt(1, 5), Pt(-2, 3), Pt(4, -1)})
	if !ok {
		t.Fatal("Bounds should report true")
	}
	if r.Min != Pt(-2, -1) || r.Max != Pt(4, 5) {
		t.Errorf("Bounds = %+v, want min (-2,-1) max (4,5)", r)
	}
	if r.Width() != 6 || r.Height() != 6 {
		t.Errorf("size = %gx%g, want 6x6", r.Width(), r.Height())
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("(1,2) should be finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN should not be finite")
	}
	if Pt(0, math.Inf(1)).IsFinite() {
		t.Error("Inf should not be finite")
	}
}
