package matching

import "github.com/katalvlaran/discretemorse/complex"

// ComputeMatching computes a Matching over an ungraded complex, via a
// trivial all-zero grading, dispatching to CubicalMatcher or GenericMatcher
// depending on whether c carries the cubical capability bundle.
func ComputeMatching(c complex.Complex, opts ...Option) (Matching, error) {
	if c == nil {
		return nil, ErrNilComplex
	}
	graded := complex.NewGradedComplex(c, func(int) int { return 0 })
	return ComputeMatchingGraded(graded, opts...)
}

// ComputeMatchingGraded computes a Matching over a graded complex,
// dispatching to CubicalMatcher or GenericMatcher depending on whether the
// underlying complex carries the cubical capability bundle. match_dim is
// ignored on the cubical path.
func ComputeMatchingGraded(graded *complex.GradedComplex, opts ...Option) (Matching, error) {
	if graded == nil {
		return nil, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, ok := complex.AsCubical(graded.Complex()); ok {
		return NewCubicalMatcher(graded, o)
	}
	return NewGenericMatcher(graded, o)
}
