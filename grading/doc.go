// Package grading builds the int-valued grading functions that turn a
// plain Complex into a complex.GradedComplex for package matching and
// package reduction to consume: grading by inclusion in a subcomplex, by
// nerve membership on a cubical complex's vertex set, and the general
// construction that extends an arbitrary top-cell grading downward by
// taking the minimum over each cell's star.
package grading
