// Package discretemorse provides a discrete Morse reduction core over
// ℤ/2 chain complexes: acyclic matching (by coreduction, generically, or
// by cubical hypercube templates), the induced Morse chain complex, and
// an iterative reduction driver that repeats matching and reduction to a
// connection-matrix fixed point — the algebraic core of computing
// persistent homology on a cell complex.
//
// Under the hood, everything is organized into six subpackages:
//
//	chain/     — ℤ/2 chains (finite sets of cells under symmetric difference)
//	complex/   — the Complex/CubicalComplex/GradedComplex contracts, plus
//	             Abstract and Cubical reference implementations
//	matching/  — ComputeMatching: acyclic matchings via coreduction or
//	             cubical hypercube templates
//	morse/     — the Morse complex induced by a matching, and its
//	             flow/coflow/lift/lower operators
//	reduction/ — ConnectionMatrix, ConnectionMatrixTower and Homology,
//	             driving repeated reduction to a fixed point
//	grading/   — grading constructors: by top-cell extension, by
//	             subcomplex inclusion, and by cubical nerve membership
package discretemorse
