package chain

import "sort"

// Chain is a ℤ/2-linear combination of cells: a finite set of cell indices
// where addition is symmetric difference. The zero value is the empty
// Chain and is ready to use.
type Chain struct {
	cells map[int]struct{}
}

// New returns an empty Chain, optionally seeded with the given cells.
func New(cells ...int) Chain {
	var c Chain
	for _, x := range cells {
		c.Add(x)
	}
	return c
}

// Add toggles membership of x (symmetric difference with the singleton {x}).
func (c *Chain) Add(x int) {
	if c.cells == nil {
		c.cells = make(map[int]struct{})
	}
	if _, ok := c.cells[x]; ok {
		delete(c.cells, x)
	} else {
		c.cells[x] = struct{}{}
	}
}

// AddChain adds other to c via symmetric difference.
func (c *Chain) AddChain(other Chain) {
	for x := range other.cells {
		c.Add(x)
	}
}

// Has reports whether x is a member of c.
func (c Chain) Has(x int) bool {
	if c.cells == nil {
		return false
	}
	_, ok := c.cells[x]
	return ok
}

// Len returns the cardinality of c.
func (c Chain) Len() int {
	return len(c.cells)
}

// Any returns an arbitrary element of c and reports whether c is non-empty.
// "Arbitrary" here is the smallest cell index, which keeps callers that rely
// on "any element" deterministic without requiring them to sort themselves.
func (c Chain) Any() (int, bool) {
	if len(c.cells) == 0 {
		return 0, false
	}
	best := 0
	first := true
	for x := range c.cells {
		if first || x < best {
			best = x
			first = false
		}
	}
	return best, true
}

// ForEach calls f once for every cell in c, in unspecified order.
func (c Chain) ForEach(f func(x int)) {
	for x := range c.cells {
		f(x)
	}
}

// Cells returns the cells of c as a sorted slice, for deterministic output.
func (c Chain) Cells() []int {
	out := make([]int, 0, len(c.cells))
	for x := range c.cells {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}

// Equal reports whether c and other contain exactly the same cells.
func (c Chain) Equal(other Chain) bool {
	if c.Len() != other.Len() {
		return false
	}
	for x := range c.cells {
		if !other.Has(x) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Chain) Clone() Chain {
	out := New()
	for x := range c.cells {
		out.Add(x)
	}
	return out
}
