// Package trilath is a tiny, dependency-light toolkit for checking
// whether three lengths make a triangle.
//
// What is in here?
//
//	triangle/       — IsTriangle predicate, Validate reasons, Classify, Area
//	internal/cli    — cobra commands behind the trilath binary
//	internal/cases  — YAML batch file loader for `trilath batch`
//	cmd/trilath     — console entry point
//
// The rule in one picture:
//
//	      /\
//	   a /  \ b       valid iff a+b > c, a+c > b, b+c > a
//	    /____\
//	      c
//
// Degenerate triples such as (3, 3, 6) lie on a line and are rejected.
//
//	go get github.com/katalvlaran/trilath/triangle
package trilath
