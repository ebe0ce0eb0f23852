package morse

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/discretemorse/chain"
	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/matching"
)

// checkCell validates that x names a cell of a reduced complex of the given
// size, wrapping ErrIndexOutOfBounds with the offending index.
func checkCell(x, size int) error {
	if x < 0 || x >= size {
		return fmt.Errorf("morse: cell %d of %d: %w", x, size, ErrIndexOutOfBounds)
	}
	return nil
}

// Complex is the reduced chain complex induced by matching over base: its
// cells are exactly the critical cells of the acyclic matching, reindexed
// densely by dimension, with boundary maps computed by flowing the base
// boundary of each critical cell down onto the critical-cell basis.
//
// Complex implements complex.Complex, so it can itself be fed back through
// matching.ComputeMatching to iterate a further reduction.
type Complex struct {
	base     complex.Complex
	matching matching.Matching

	begin   []int       // begin[d]..begin[d+1] is the new-index range of dimension d
	include []int       // new index -> base cell index
	project map[int]int // base cell index -> new index (critical cells only)

	bd  []chain.Chain // new index -> boundary chain, in new indices
	cbd []chain.Chain // new index -> coboundary chain, in new indices
}

// New builds the Morse complex induced by m over base.
func New(base complex.Complex, m matching.Matching) (*Complex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	begin, reindex := m.CriticalCells()
	n := len(reindex)

	include := make([]int, n)
	project := make(map[int]int, n)
	for _, r := range reindex {
		include[r.NewIndex] = r.OldCell
		project[r.OldCell] = r.NewIndex
	}

	mc := &Complex{
		base:     base,
		matching: m,
		begin:    begin,
		include:  include,
		project:  project,
	}

	mc.bd = make([]chain.Chain, n)
	for newI := 0; newI < n; newI++ {
		oldCell := include[newI]
		baseBoundary, err := base.Boundary(chain.New(oldCell))
		if err != nil {
			return nil, err
		}
		canonical, _, err := flow(base, m, baseBoundary)
		if err != nil {
			return nil, err
		}
		mc.bd[newI] = mc.projectChain(canonical)
	}

	mc.cbd = make([]chain.Chain, n)
	for newI, b := range mc.bd {
		b.ForEach(func(x int) {
			mc.cbd[x].Add(newI)
		})
	}

	return mc, nil
}

// Reduce computes a matching on base via matching.ComputeMatching and
// returns the induced Morse complex in one step.
func Reduce(base complex.Complex, opts ...matching.Option) (*Complex, error) {
	if base == nil {
		return nil, ErrNilComplex
	}
	m, err := matching.ComputeMatching(base, opts...)
	if err != nil {
		return nil, err
	}
	return New(base, m)
}

// flow reduces input to its canonical form: a chain containing no queens,
// by repeatedly popping the highest-priority queen still present and
// cancelling it against its king's base boundary. gamma accumulates the
// kings used for cancellation, needed by lift to recover a preimage.
func flow(base complex.Complex, m matching.Matching, input chain.Chain) (canonical, gamma chain.Chain, err error) {
	canonical = chain.New()
	gamma = chain.New()

	pq := &maxPQ{}
	process := func(x int) {
		if matching.IsQueen(m, x) {
			heap.Push(pq, cellItem{cell: x, priority: m.Priority(x)})
		}
		canonical.Add(x)
	}

	input.ForEach(process)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(cellItem)
		queen := item.cell
		if !canonical.Has(queen) {
			continue
		}
		king := m.Mate(queen)
		gamma.Add(king)
		if err := base.Column(king, process); err != nil {
			return chain.Chain{}, chain.Chain{}, err
		}
	}

	return canonical, gamma, nil
}

// coflow is the dual of flow: it pops the lowest-priority king still
// present and cancels it against its queen's base coboundary.
func coflow(base complex.Complex, m matching.Matching, input chain.Chain) (canonical, gamma chain.Chain, err error) {
	canonical = chain.New()
	gamma = chain.New()

	pq := &minPQ{}
	process := func(x int) {
		if matching.IsKing(m, x) {
			heap.Push(pq, cellItem{cell: x, priority: m.Priority(x)})
		}
		canonical.Add(x)
	}

	input.ForEach(process)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(cellItem)
		king := item.cell
		if !canonical.Has(king) {
			continue
		}
		queen := m.Mate(king)
		gamma.Add(queen)
		if err := base.Row(queen, process); err != nil {
			return chain.Chain{}, chain.Chain{}, err
		}
	}

	return canonical, gamma, nil
}

// Include maps newCells (indices into this Morse complex) to their base
// cell indices. Returns ErrIndexOutOfBounds if a new index is outside
// [0, Size()).
func (m *Complex) Include(newCells []int) (chain.Chain, error) {
	out := chain.New()
	for _, x := range newCells {
		if err := checkCell(x, m.Size()); err != nil {
			return chain.Chain{}, err
		}
		out.Add(m.include[x])
	}
	return out, nil
}

// projectChain maps a base-indexed chain onto new indices, keeping only the
// cells that are critical; kings surviving in a canonical form are dropped.
func (m *Complex) projectChain(c chain.Chain) chain.Chain {
	out := chain.New()
	c.ForEach(func(x int) {
		if newI, ok := m.project[x]; ok {
			out.Add(newI)
		}
	})
	return out
}

// Project maps a chain of base-cell indices onto new indices, keeping only
// the cells that are critical.
func (m *Complex) Project(c chain.Chain) chain.Chain {
	return m.projectChain(c)
}

// Lift recovers a base-complex chain homologous to c that canonically
// reduces back to c: the base cells included by c, plus the kings used to
// cancel the queens that appear in the base boundary of that inclusion.
func (m *Complex) Lift(c chain.Chain) (chain.Chain, error) {
	included, err := m.Include(c.Cells())
	if err != nil {
		return chain.Chain{}, err
	}
	baseBoundary, err := m.base.Boundary(included)
	if err != nil {
		return chain.Chain{}, err
	}
	_, gamma, err := flow(m.base, m.matching, baseBoundary)
	if err != nil {
		return chain.Chain{}, err
	}
	result := included.Clone()
	result.AddChain(gamma)
	return result, nil
}

// Lower projects a base-complex chain c down onto the critical-cell basis
// by flowing it to canonical form and reindexing. Returns
// ErrIndexOutOfBounds if c names a cell outside [0, base.Size()).
func (m *Complex) Lower(c chain.Chain) (chain.Chain, error) {
	for _, x := range c.Cells() {
		if err := checkCell(x, m.base.Size()); err != nil {
			return chain.Chain{}, err
		}
	}
	canonical, _, err := flow(m.base, m.matching, c)
	if err != nil {
		return chain.Chain{}, err
	}
	return m.projectChain(canonical), nil
}

// Colift is the coboundary-side dual of Lift.
func (m *Complex) Colift(c chain.Chain) (chain.Chain, error) {
	included, err := m.Include(c.Cells())
	if err != nil {
		return chain.Chain{}, err
	}
	baseCoboundary, err := m.base.Coboundary(included)
	if err != nil {
		return chain.Chain{}, err
	}
	_, gamma, err := coflow(m.base, m.matching, baseCoboundary)
	if err != nil {
		return chain.Chain{}, err
	}
	result := included.Clone()
	result.AddChain(gamma)
	return result, nil
}

// Colower is the coboundary-side dual of Lower.
func (m *Complex) Colower(c chain.Chain) (chain.Chain, error) {
	for _, x := range c.Cells() {
		if err := checkCell(x, m.base.Size()); err != nil {
			return chain.Chain{}, err
		}
	}
	canonical, _, err := coflow(m.base, m.matching, c)
	if err != nil {
		return chain.Chain{}, err
	}
	return m.projectChain(canonical), nil
}

// Size returns the number of critical cells.
func (m *Complex) Size() int { return len(m.include) }

// Dimension returns the top dimension of the matching's critical-cell table
// (len(begin)-2), which is the dimension the matching covered; the top
// dimensions may hold no critical cells.
func (m *Complex) Dimension() int { return len(m.begin) - 2 }

// SizeOfDim returns the number of critical cells of dimension d.
func (m *Complex) SizeOfDim(d int) int {
	if d < 0 || d+1 >= len(m.begin) {
		return 0
	}
	return m.begin[d+1] - m.begin[d]
}

// Range returns the new-indexed critical cells of dimension d, ascending.
func (m *Complex) Range(d int) []int {
	if d < 0 || d+1 >= len(m.begin) {
		return nil
	}
	lo, hi := m.begin[d], m.begin[d+1]
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}
	return out
}

// DimOf returns the dimension of new-indexed cell x.
func (m *Complex) DimOf(x int) int {
	// m.begin has few entries (one per dimension); linear scan is fine.
	for d := 0; d+1 < len(m.begin); d++ {
		if x >= m.begin[d] && x < m.begin[d+1] {
			return d
		}
	}
	return -1
}

// Boundary returns the boundary of c in new indices.
func (m *Complex) Boundary(c chain.Chain) (chain.Chain, error) {
	out := chain.New()
	for _, x := range c.Cells() {
		if err := checkCell(x, m.Size()); err != nil {
			return chain.Chain{}, err
		}
		out.AddChain(m.bd[x])
	}
	return out, nil
}

// Coboundary returns the coboundary of c in new indices.
func (m *Complex) Coboundary(c chain.Chain) (chain.Chain, error) {
	out := chain.New()
	for _, x := range c.Cells() {
		if err := checkCell(x, m.Size()); err != nil {
			return chain.Chain{}, err
		}
		out.AddChain(m.cbd[x])
	}
	return out, nil
}

// Column invokes cb once for every cell in the boundary of cell i.
func (m *Complex) Column(i int, cb func(x int)) error {
	if err := checkCell(i, m.Size()); err != nil {
		return err
	}
	m.bd[i].ForEach(cb)
	return nil
}

// Row invokes cb once for every cell in the coboundary of cell i.
func (m *Complex) Row(i int, cb func(x int)) error {
	if err := checkCell(i, m.Size()); err != nil {
		return err
	}
	m.cbd[i].ForEach(cb)
	return nil
}

// Closure returns the smallest boundary-closed set of new indices
// containing cells.
func (m *Complex) Closure(cells []int) (map[int]struct{}, error) {
	seen := make(map[int]struct{}, len(cells))
	queue := make([]int, 0, len(cells))
	for _, x := range cells {
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			queue = append(queue, x)
		}
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		err := m.Column(x, func(y int) {
			if _, ok := seen[y]; !ok {
				seen[y] = struct{}{}
				queue = append(queue, y)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return seen, nil
}
