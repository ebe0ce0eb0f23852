package reduction

import (
	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/morse"
)

// reduceOnce performs a single matching + Morse-reduction round.
func reduceOnce(cur *complex.GradedComplex, o Options) (*complex.GradedComplex, error) {
	return morse.ReduceGraded(cur, o.matchingOptions()...)
}

// ConnectionMatrix reduces base round by round until a round leaves the
// cell count unchanged, and returns that fixed point.
func ConnectionMatrix(base *complex.GradedComplex, opts ...Option) (*complex.GradedComplex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	next := base
	for {
		cur := next
		reduced, err := reduceOnce(cur, o)
		if err != nil {
			return nil, err
		}
		if reduced.Complex().Size() == cur.Complex().Size() {
			return cur, nil
		}
		next = reduced
	}
}

// ConnectionMatrixTower reduces base the same way as ConnectionMatrix, but
// returns every intermediate complex in the sequence, including the fixed
// point as its final element.
func ConnectionMatrixTower(base *complex.GradedComplex, opts ...Option) ([]*complex.GradedComplex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var tower []*complex.GradedComplex
	next := base
	for {
		cur := next
		tower = append(tower, cur)
		reduced, err := reduceOnce(cur, o)
		if err != nil {
			return nil, err
		}
		if reduced.Complex().Size() == cur.Complex().Size() {
			return tower, nil
		}
		next = reduced
	}
}

// Homology reduces base (wrapped in a trivial all-zero grading) to its
// fixed point and returns the resulting complex, whose cells are exactly
// the generators of the homology of base over GF(2).
func Homology(base complex.Complex, opts ...Option) (complex.Complex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	graded := complex.NewGradedComplex(base, func(int) int { return 0 })
	result, err := ConnectionMatrix(graded, opts...)
	if err != nil {
		return nil, err
	}
	return result.Complex(), nil
}
