package triangle

import (
	"fmt"
	"math"
)

// IsTriangle reports whether a, b and c can be the sides of a
// non-degenerate triangle.
//
// The result is true iff all three strict inequalities hold:
//
//	a + b > c
//	a + c > b
//	b + c > a
//
// The function is total: zero, negative, NaN and infinite inputs simply
// yield false. Comparison uses ordinary float64 arithmetic without any
// tolerance, so an exact equality (a+b == c) is rejected.
//
// Complexity: O(1).
func IsTriangle(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// Validate explains why a, b, c do not form a triangle.
// It returns nil exactly when IsTriangle(a, b, c) is true; otherwise the
// returned error wraps one of ErrNotFinite, ErrNonPositiveSide,
// ErrDegenerate or ErrInequality, checked in that order.
//
// Example:
//
//	if err := Validate(3, 3, 6); errors.Is(err, ErrDegenerate) {
//		// collinear sides
//	}
func Validate(a, b, c float64) error {
	if IsTriangle(a, b, c) {
		return nil
	}

	s := NewSides(a, b, c)
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: got (%g, %g, %g)", ErrNotFinite, a, b, c)
		}
	}
	for _, v := range s {
		if v <= 0 {
			return fmt.Errorf("%w: got (%g, %g, %g)", ErrNonPositiveSide, a, b, c)
		}
	}

	// All sides positive and finite: only the longest side can break the rule.
	sorted := s.Sorted()
	if sorted[0]+sorted[1] == sorted[2] {
		return fmt.Errorf("%w: %g + %g == %g", ErrDegenerate, sorted[0], sorted[1], sorted[2])
	}
	return fmt.Errorf("%w: %g + %g < %g", ErrInequality, sorted[0], sorted[1], sorted[2])
}
