package errors

import "math"

// ValidateRadius checks that r is usable as a unit disk radius.
// The radius must be a finite, strictly positive number.
func ValidateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return New(ErrCodeInvalidArgument, "radius must be finite, got %g", r)
	}
	if r <= 0 {
		return New(ErrCodeInvalidArgument, "radius must be positive, got %g", r)
	}
	return nil
}

// ValidateTolerance checks a hit-testing tolerance.
// Zero is allowed and means an exact hit; negative and non-finite values are not.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return New(ErrCodeInvalidArgument, "tolerance must be finite, got %g", tol)
	}
	if tol < 0 {
		return New(ErrCodeInvalidArgument, "tolerance must not be negative, got %g", tol)
	}
	return nil
}

// ValidateCoordinate checks that a single coordinate is a finite real.
// The index is only used to make the message point at the offending entry.
func ValidateCoordinate(index int, x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return New(ErrCodeInvalidInput, "point %d has a non-finite coordinate (%g, %g)", index, x, y)
	}
	return nil
}

// ValidatePointBudget rejects point sets whose intersection graph would be too
// expensive to build. A limit of zero or less disables the check.
//
// The intersection graph tests every pair of diagonals, so its cost grows
// with the fourth power of the number of points.
func ValidatePointBudget(n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidArgument, "%d points exceed the intersection graph limit of %d", n, limit)
	}
	return nil
}
