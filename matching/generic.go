package matching

import (
	"fmt"

	"github.com/katalvlaran/discretemorse/chain"
	"github.com/katalvlaran/discretemorse/complex"
)

// GenericMatcher computes a Morse matching on any graded complex by
// coreduction: repeatedly cancel a cell K whose grade-restricted boundary
// has exactly one unmatched cell Q, pairing (K, Q); when no such K exists,
// declare any cell with empty restricted boundary critical.
type GenericMatcher struct {
	mate     []int
	priority []int
	begin    []int
	reindex  []Reindex
}

// NewGenericMatcher builds a GenericMatcher over graded, matching up to
// dimension opts.MatchDim when it is in [0, dimension] (0 means no
// up-matching), or the full dimension when MatchDim is negative. A MatchDim
// above the dimension returns ErrBadMatchDim.
func NewGenericMatcher(graded *complex.GradedComplex, opts Options) (*GenericMatcher, error) {
	if graded == nil {
		return nil, ErrNilComplex
	}
	c := graded.Complex()

	dim := c.Dimension()
	d := dim
	if opts.MatchDim >= 0 {
		if opts.MatchDim > dim {
			return nil, ErrBadMatchDim
		}
		d = opts.MatchDim
	}

	topBegin := 0
	for dd := 0; dd < d; dd++ {
		topBegin += c.SizeOfDim(dd)
	}
	n := topBegin + c.SizeOfDim(d)

	const unmatched = -1
	mate := make([]int, n)
	for i := range mate {
		mate[i] = unmatched
	}
	priority := make([]int, n)
	boundaryCount := make([]int, n)
	aceCandidates := map[int]struct{}{}
	coreducible := map[int]struct{}{}

	bd := func(x int) (chain.Chain, error) {
		out := chain.New()
		xVal := graded.Value(x)
		var failed error
		if err := c.Column(x, func(y int) {
			yVal := graded.Value(y)
			if yVal > xVal {
				failed = fmt.Errorf("matching: %w (cell %d grade %d, boundary cell %d grade %d)", ErrInvariantViolation, x, xVal, y, yVal)
				return
			}
			if yVal == xVal {
				out.Add(y)
			}
		}); err != nil {
			return chain.Chain{}, err
		}
		return out, failed
	}
	cbd := func(x int) (chain.Chain, error) {
		out := chain.New()
		if x >= topBegin {
			return out, nil
		}
		xVal := graded.Value(x)
		if err := c.Row(x, func(y int) {
			if graded.Value(y) == xVal {
				out.Add(y)
			}
		}); err != nil {
			return chain.Chain{}, err
		}
		return out, nil
	}

	m := 0
	var processed, prevBar int
	if opts.Verbose {
		fmt.Printf("Generic Morse Matching on %d cells.\n", n)
		prevBar = -1
	}
	for x := 0; x < n; x++ {
		if !opts.Truncate || graded.Value(x) <= opts.MaxGrade {
			m++
			boundary, err := bd(x)
			if err != nil {
				return nil, err
			}
			boundaryCount[x] = boundary.Len()
			switch boundaryCount[x] {
			case 0:
				aceCandidates[x] = struct{}{}
			case 1:
				coreducible[x] = struct{}{}
			}
		}
		if opts.Verbose {
			processed++
			prevBar = progressBar("init", processed, n, prevBar)
		}
	}

	numProcessed := 0
	process := func(y int) error {
		priority[y] = graded.Value(y)*m + numProcessed
		numProcessed++
		delete(coreducible, y)
		delete(aceCandidates, y)
		co, err := cbd(y)
		if err != nil {
			return err
		}
		co.ForEach(func(x int) {
			boundaryCount[x]--
			switch boundaryCount[x] {
			case 0:
				delete(coreducible, x)
				aceCandidates[x] = struct{}{}
			case 1:
				coreducible[x] = struct{}{}
			}
		})
		return nil
	}

	prevBar = -1
	for numProcessed < m {
		if len(coreducible) > 0 {
			k := minKey(coreducible)
			delete(coreducible, k)

			boundary, err := bd(k)
			if err != nil {
				return nil, err
			}
			q := -1
			for _, x := range boundary.Cells() {
				if mate[x] == unmatched {
					q = x
					break
				}
			}
			mate[k] = q
			mate[q] = k
			if err := process(q); err != nil {
				return nil, err
			}
			if err := process(k); err != nil {
				return nil, err
			}
		} else {
			a := minKey(aceCandidates)
			delete(aceCandidates, a)
			mate[a] = a
			if err := process(a); err != nil {
				return nil, err
			}
		}
		if opts.Verbose {
			prevBar = progressBar("match", numProcessed, m, prevBar)
		}
	}

	gm := &GenericMatcher{mate: mate, priority: priority}
	gm.begin = make([]int, d+2)
	idx := 0
	for dd := 0; dd <= d; dd++ {
		gm.begin[dd] = idx
		for _, v := range c.Range(dd) {
			if !opts.Truncate || graded.Value(v) <= opts.MaxGrade {
				if IsCritical(gm, v) {
					gm.reindex = append(gm.reindex, Reindex{OldCell: v, NewIndex: idx})
					idx++
				}
			}
		}
	}
	gm.begin[d+1] = idx

	return gm, nil
}

// minKey returns the smallest key of set, fixing the tie-break order of
// coreduction/ace extraction so matchings are reproducible across runs.
// Any deterministic extraction order yields a valid matching with the same
// homology; the smallest index is simply the cheapest one to make stable
// given Go's randomized map iteration.
func minKey(set map[int]struct{}) int {
	best := 0
	first := true
	for x := range set {
		if first || x < best {
			best = x
			first = false
		}
	}
	return best
}

// Mate returns the partner of x, or x itself if x is critical.
func (g *GenericMatcher) Mate(x int) int { return g.mate[x] }

// Priority returns the cached priority of x.
func (g *GenericMatcher) Priority(x int) int { return g.priority[x] }

// CriticalCells returns the per-dimension begin table and the critical
// cells in ascending new-index order.
func (g *GenericMatcher) CriticalCells() ([]int, []Reindex) { return g.begin, g.reindex }
