package matching

import (
	"fmt"

	"github.com/katalvlaran/discretemorse/complex"
)

// CubicalMatcher computes a Morse matching on a graded CubicalComplex via
// per-axis hypercube templates: every cell proposes a mate by trying to
// extend one unset axis at a time, accepting the first same-grade,
// non-fringe candidate that is not itself claimed by a higher king.
type CubicalMatcher struct {
	graded   *complex.GradedComplex
	cplx     complex.CubicalComplex
	typeSize int
	begin    []int
	reindex  []Reindex
}

// NewCubicalMatcher builds a CubicalMatcher over graded, whose underlying
// complex must carry the cubical capability bundle.
func NewCubicalMatcher(graded *complex.GradedComplex, opts Options) (*CubicalMatcher, error) {
	if graded == nil {
		return nil, ErrNilComplex
	}
	cc, ok := complex.AsCubical(graded.Complex())
	if !ok {
		return nil, ErrNotCubical
	}

	m := &CubicalMatcher{
		graded:   graded,
		cplx:     cc,
		typeSize: cc.TypeSize(),
	}

	n := cc.Size()
	d := cc.Dimension()
	var processed, prevBar int
	if opts.Verbose {
		fmt.Printf("Cubical Morse Matching on %d cells.\n", n)
		prevBar = -1
	}

	m.begin = make([]int, d+2)
	idx := 0
	var prevKings, nextKings map[int]struct{}
	nextKings = map[int]struct{}{}

	for dim := 0; dim <= d; dim++ {
		m.begin[dim] = idx
		prevKings, nextKings = nextKings, map[int]struct{}{}

		for _, v := range cc.Range(dim) {
			if opts.Verbose {
				processed++
				prevBar = progressBar("matching", processed, n, prevBar)
			}
			if cc.RightFringe(v) {
				continue
			}
			if opts.Truncate && graded.Value(v) > opts.MaxGrade {
				continue
			}
			if _, ok := prevKings[v]; ok {
				continue
			}

			mate := m.proposeRestricted(v, opts)
			if mate == v {
				m.reindex = append(m.reindex, Reindex{OldCell: v, NewIndex: idx})
				idx++
			} else {
				nextKings[mate] = struct{}{}
			}
		}
	}
	m.begin[d+1] = idx

	return m, nil
}

// proposeRestricted proposes a mate for v during construction: only axes
// unset in shape(v) are tried for v itself, so it can only discover a king
// for v, never a queen (queens are discovered as the mates of kings one
// dimension down). The restriction applies only to this top-level call;
// each candidate's own acceptance check is the unrestricted mateFull over
// the axis range below the flipped bit, which is what makes the cached
// construction agree with query-time Mate.
func (m *CubicalMatcher) proposeRestricted(v int, opts Options) int {
	if m.cplx.RightFringe(v) {
		return v
	}
	shape := m.cplx.CellShape(v)
	ts := m.cplx.TS()
	pos := m.cplx.CellPos(v)
	value := m.graded.Value(v)

	for bit := 0; bit < m.axisCount(); bit++ {
		mask := 1 << bit
		if shape&mask != 0 {
			continue // axis already extended: not a king candidate via this bit
		}
		candidateShape := shape ^ mask
		cand := ts[candidateShape]*m.typeSize + pos
		if m.cplx.RightFringe(cand) {
			continue
		}
		if m.graded.Value(cand) != value {
			continue
		}
		if m.mateFull(cand, bit) == cand {
			return cand
		}
	}
	return v
}

func (m *CubicalMatcher) axisCount() int {
	return m.cplx.Dimension()
}

// Mate recomputes the mate of x at query time using the full axis range,
// equivalent by construction to the matching cached during construction.
func (m *CubicalMatcher) Mate(x int) int {
	return m.mateFull(x, m.cplx.Dimension())
}

func (m *CubicalMatcher) mateFull(cell, d int) int {
	if m.cplx.RightFringe(cell) {
		return cell
	}
	shape := m.cplx.CellShape(cell)
	ts := m.cplx.TS()
	pos := m.cplx.CellPos(cell)
	value := m.graded.Value(cell)

	for bit, mask := 0, 1; bit < d; bit, mask = bit+1, mask<<1 {
		candidateShape := shape ^ mask
		cand := ts[candidateShape]*m.typeSize + pos
		if m.cplx.RightFringe(cand) {
			continue
		}
		if m.graded.Value(cand) != value {
			continue
		}
		if m.mateFull(cand, bit) == cand {
			return cand
		}
	}
	return cell
}

// Priority returns type_size - (x mod type_size), preferring higher-position
// cells when flow pops the max-priority queen first.
func (m *CubicalMatcher) Priority(x int) int {
	return m.typeSize - x%m.typeSize
}

// CriticalCells returns the per-dimension begin table and the critical
// cells in ascending new-index order.
func (m *CubicalMatcher) CriticalCells() ([]int, []Reindex) {
	return m.begin, m.reindex
}
