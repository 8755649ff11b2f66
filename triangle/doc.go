// Package triangle decides whether three side lengths form a triangle.
//
// What:
//
//   - IsTriangle reports whether a, b, c satisfy the strict triangle
//     inequality: a+b > c, a+c > b and b+c > a.
//   - Validate returns the reason a triple is rejected as a sentinel error.
//   - Classify labels a valid triple as Equilateral, Isosceles or Scalene.
//   - Area computes the area of a valid triple (Heron, Kahan ordering).
//
// Why:
//
//   - Input checking for geometry code that assumes a real triangle.
//   - Teaching: the smallest useful example of a total, pure predicate.
//
// Rules:
//
//   - All three inequalities are evaluated directly. There is no
//     "longest side" shortcut, so (0,0,0) and (-1,-1,-1) are rejected
//     by the same comparisons as (2,3,6).
//   - Comparison is plain float64 with no epsilon. (1, 1, 2) is degenerate
//     and rejected; (1, 1, 1.000001) is accepted.
//   - Zero, negative, NaN and ±Inf sides are always rejected.
//   - The result does not depend on argument order.
//
// Complexity:
//
//   - IsTriangle, Validate, Classify, Area: O(1) time, O(1) memory.
//
// Concurrency:
//
//	Every function is pure. No package state exists, so any number of
//	goroutines may call them concurrently without coordination.
//
// Errors:
//
//   - ErrNotFinite:       a side is NaN or ±Inf.
//   - ErrNonPositiveSide: a side is zero or negative.
//   - ErrDegenerate:      the longest side equals the sum of the other two.
//   - ErrInequality:      the longest side exceeds the sum of the other two.
package triangle
