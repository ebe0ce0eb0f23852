package morse

import (
	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/matching"
)

// NewGraded builds the Morse complex induced by m over base.Complex(), and
// grades each new critical cell by the base grade of the single base cell
// it includes.
func NewGraded(base *complex.GradedComplex, m matching.Matching) (*complex.GradedComplex, error) {
	mc, err := New(base.Complex(), m)
	if err != nil {
		return nil, err
	}

	mapping := make([]int, mc.Size())
	for x := 0; x < mc.Size(); x++ {
		included, err := mc.Include([]int{x})
		if err != nil {
			return nil, err
		}
		oldCell, _ := included.Any()
		mapping[x] = base.Value(oldCell)
	}

	return complex.NewGradedComplex(mc, func(x int) int { return mapping[x] }), nil
}

// ReduceGraded computes a matching on base via matching.ComputeMatchingGraded
// and returns the induced graded Morse complex in one step. This is the unit
// of work package reduction repeats to a fixed point.
func ReduceGraded(base *complex.GradedComplex, opts ...matching.Option) (*complex.GradedComplex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	m, err := matching.ComputeMatchingGraded(base, opts...)
	if err != nil {
		return nil, err
	}
	return NewGraded(base, m)
}
