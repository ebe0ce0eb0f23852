package matching

import "errors"

// Sentinel errors for package matching.
var (
	// ErrNotCubical indicates CubicalMatcher was given a complex that does
	// not implement the cubical capability bundle.
	ErrNotCubical = errors.New("matching: complex is not cubical")

	// ErrBadMatchDim indicates match_dim was set above the complex's
	// dimension.
	ErrBadMatchDim = errors.New("matching: match_dim out of range")

	// ErrInvariantViolation indicates the graded closure property failed:
	// some boundary cell y of x had Value(y) > Value(x).
	ErrInvariantViolation = errors.New("matching: graded closure property violated")

	// ErrNilComplex indicates a nil Complex or GradedComplex was supplied.
	ErrNilComplex = errors.New("matching: complex is nil")
)
