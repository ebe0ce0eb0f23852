// Package matching computes acyclic partial matchings on the cells of a
// complex: a partial involution mate pairing each "queen" cell with a
// "king" cell one dimension higher, leaving the rest critical ("aces").
//
// Two algorithms are provided:
//
//   - CubicalMatcher: per-axis hypercube template matching on a graded
//     CubicalComplex, O(N*D).
//   - GenericMatcher: coreduction — greedily cancel any cell whose
//     grade-restricted boundary has exactly one unmatched cell, falling
//     back to declaring a cell critical when its restricted boundary is
//     empty.
//
// ComputeMatching and ComputeMatchingGraded dispatch between the two based
// on whether the given complex carries the cubical capability bundle.
//
// Options:
//
//	– WithTruncate(maxGrade): exclude cells with grade > maxGrade from
//	  matching and from the resulting critical-cell set. Default: untruncated.
//	– WithMatchDim(d): cap GenericMatcher at dimension d; ignored by
//	  CubicalMatcher. Default -1 (full dimension).
//	– WithVerbose(): print progress to stdout. No semantic effect.
//
// Errors (sentinel):
//
//	– ErrNotCubical:          CubicalMatcher given a non-cubical complex.
//	– ErrBadMatchDim:         match_dim above the complex's dimension.
//	– ErrInvariantViolation:  the graded closure property does not hold.
package matching
