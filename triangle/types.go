// Package triangle defines the side triple, triangle kinds and sentinel
// errors used by the validator.
package triangle

import (
	"errors"
	"sort"
)

// Sentinel errors returned by Validate and Area.
var (
	// ErrNotFinite indicates at least one side is NaN or ±Inf.
	ErrNotFinite = errors.New("triangle: side length must be finite")
	// ErrNonPositiveSide indicates at least one side is zero or negative.
	ErrNonPositiveSide = errors.New("triangle: side length must be positive")
	// ErrDegenerate indicates the sides are collinear (a+b == c).
	ErrDegenerate = errors.New("triangle: degenerate triangle, sum of two sides equals the third")
	// ErrInequality indicates one side is longer than the other two combined.
	ErrInequality = errors.New("triangle: triangle inequality violated")
)

// Kind classifies a triangle by how many of its sides are equal.
type Kind int

const (
	// Invalid marks a triple that does not form a triangle.
	Invalid Kind = iota
	// Scalene has three different sides.
	Scalene
	// Isosceles has exactly two equal sides.
	Isosceles
	// Equilateral has three equal sides.
	Equilateral
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Scalene:
		return "scalene"
	case Isosceles:
		return "isosceles"
	case Equilateral:
		return "equilateral"
	default:
		return "invalid"
	}
}

// Sides is a candidate triple of side lengths in input order.
type Sides [3]float64

// NewSides packs a, b, c into a Sides value.
func NewSides(a, b, c float64) Sides {
	return Sides{a, b, c}
}

// A returns the first side.
func (s Sides) A() float64 { return s[0] }

// B returns the second side.
func (s Sides) B() float64 { return s[1] }

// C returns the third side.
func (s Sides) C() float64 { return s[2] }

// Valid reports whether s forms a triangle. See IsTriangle.
func (s Sides) Valid() bool {
	return IsTriangle(s[0], s[1], s[2])
}

// Perimeter returns the plain sum of the three sides.
// It is meaningful only when s.Valid() is true.
func (s Sides) Perimeter() float64 {
	return s[0] + s[1] + s[2]
}

// Sorted returns a copy of s in ascending order. NaN sides sort first.
func (s Sides) Sorted() Sides {
	out := s
	sort.Float64s(out[:])
	return out
}
