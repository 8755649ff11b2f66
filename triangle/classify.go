package triangle

import "math"

// Classify returns the Kind of the triangle with sides a, b, c.
// Invalid is returned whenever IsTriangle(a, b, c) is false.
// Sides are compared with ==, so 5 and 5.0000001 count as different.
func Classify(a, b, c float64) Kind {
	if !IsTriangle(a, b, c) {
		return Invalid
	}
	switch {
	case a == b && b == c:
		return Equilateral
	case a == b || b == c || a == c:
		return Isosceles
	default:
		return Scalene
	}
}

// Area returns the area of the triangle with sides a, b, c.
//
// Heron's formula is evaluated in Kahan's ordering on sides sorted so
// that x ≥ y ≥ z:
//
//	area = ¼·√((x+(y+z))·(z−(x−y))·(z+(x−y))·(x+(y−z)))
//
// The parentheses must not be rearranged.
//
// Errors: the error from Validate when the triple is not a triangle.
func Area(a, b, c float64) (float64, error) {
	if err := Validate(a, b, c); err != nil {
		return 0, err
	}
	s := NewSides(a, b, c).Sorted()
	x, y, z := s[2], s[1], s[0]

	p := (x + (y + z)) * (z - (x - y)) * (z + (x - y)) * (x + (y - z))
	if p < 0 {
		// rounding on a near-degenerate triple
		p = 0
	}
	return 0.25 * math.Sqrt(p), nil
}
