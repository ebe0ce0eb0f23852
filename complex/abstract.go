package complex

import (
	"fmt"

	"github.com/katalvlaran/discretemorse/chain"
)

// checkCell validates that x names a cell of a complex of the given size,
// wrapping ErrIndexOutOfBounds with the offending index the way
// matrix-style indexers report theirs.
func checkCell(x, size int) error {
	if x < 0 || x >= size {
		return fmt.Errorf("complex: cell %d of %d: %w", x, size, ErrIndexOutOfBounds)
	}
	return nil
}

// Abstract is a reference Complex implementation for arbitrary (non-cubical)
// finite cell complexes, built incrementally via AbstractBuilder. It stores
// the boundary of every cell explicitly and derives the coboundary by
// transposition, mirroring the dense adjacency-by-index style of
// core.Graph's storage (a flat table indexed by cell rather than a map
// keyed by string ID, since cells are already dense integers).
type Abstract struct {
	dim        int
	sizeOfDim  []int
	begin      []int // begin[d] = first cell index of dimension d; begin[dim+1] = Size()
	boundary   []chain.Chain
	coboundary []chain.Chain
}

// Size returns the total number of cells.
func (c *Abstract) Size() int { return c.begin[c.dim+1] }

// Dimension returns the top dimension present in the complex.
func (c *Abstract) Dimension() int { return c.dim }

// SizeOfDim returns the number of cells of dimension d.
func (c *Abstract) SizeOfDim(d int) int {
	if d < 0 || d > c.dim {
		return 0
	}
	return c.sizeOfDim[d]
}

// Range returns the cell indices of dimension d, in ascending order.
func (c *Abstract) Range(d int) []int {
	if d < 0 || d > c.dim {
		return nil
	}
	out := make([]int, 0, c.sizeOfDim[d])
	for x := c.begin[d]; x < c.begin[d+1]; x++ {
		out = append(out, x)
	}
	return out
}

// DimOf returns the dimension of cell x.
func (c *Abstract) DimOf(x int) int {
	for d := 0; d <= c.dim; d++ {
		if x < c.begin[d+1] {
			return d
		}
	}
	return -1
}

// Boundary returns the boundary of chain in: the symmetric difference of the
// precomputed boundary chains of its cells.
func (c *Abstract) Boundary(in chain.Chain) (chain.Chain, error) {
	out := chain.New()
	for _, x := range in.Cells() {
		if err := checkCell(x, c.Size()); err != nil {
			return chain.Chain{}, err
		}
		out.AddChain(c.boundary[x])
	}
	return out, nil
}

// Coboundary returns the coboundary of chain in.
func (c *Abstract) Coboundary(in chain.Chain) (chain.Chain, error) {
	out := chain.New()
	for _, x := range in.Cells() {
		if err := checkCell(x, c.Size()); err != nil {
			return chain.Chain{}, err
		}
		out.AddChain(c.coboundary[x])
	}
	return out, nil
}

// Column invokes cb for every cell in the boundary of cell i.
func (c *Abstract) Column(i int, cb func(x int)) error {
	if err := checkCell(i, c.Size()); err != nil {
		return err
	}
	c.boundary[i].ForEach(cb)
	return nil
}

// Row invokes cb for every cell in the coboundary of cell i.
func (c *Abstract) Row(i int, cb func(x int)) error {
	if err := checkCell(i, c.Size()); err != nil {
		return err
	}
	c.coboundary[i].ForEach(cb)
	return nil
}

// Closure returns the downward closure of cells under Boundary.
func (c *Abstract) Closure(cells []int) (map[int]struct{}, error) {
	return closureOf(c, cells)
}

// AbstractBuilder incrementally constructs an Abstract complex, one cell at
// a time, the way core.NewGraph builds a Graph via AddVertex/AddEdge calls
// rather than a single bulk literal.
type AbstractBuilder struct {
	dim       int
	sizeOfDim []int
	begin     []int
	boundary  []chain.Chain
}

// NewAbstractBuilder returns an empty builder ready to accept cells,
// pre-seeded with an empty dimension-0 band.
func NewAbstractBuilder() *AbstractBuilder {
	return &AbstractBuilder{
		dim:       0,
		sizeOfDim: []int{0},
		begin:     []int{0, 0},
	}
}

// AddCell appends a new cell of dimension dim with the given boundary cell
// indices (which must already exist in the builder) and returns its index.
//
// Cells must be added in non-decreasing dimension order so that the final
// complex satisfies the dense, dimension-ordered partition required by
// Complex: once a cell of dimension d+1 has been added, no more cells of
// dimension d may be added, and a cell of dimension d+1 may only be added
// once every dimension up to d holds at least one cell.
func (b *AbstractBuilder) AddCell(dim int, boundary ...int) (int, error) {
	if dim < b.dim {
		return 0, ErrNonDenseCells
	}
	for d := 0; d < dim; d++ {
		if d > b.dim || b.sizeOfDim[d] == 0 {
			return 0, ErrNonDenseCells
		}
	}
	for b.dim < dim {
		b.dim++
		b.sizeOfDim = append(b.sizeOfDim, 0)
		b.begin = append(b.begin, b.begin[len(b.begin)-1])
	}
	idx := b.begin[len(b.begin)-1]
	for _, y := range boundary {
		if y < 0 || y >= idx {
			return 0, ErrUnknownBoundaryCell
		}
	}
	b.boundary = append(b.boundary, chain.New(boundary...))
	b.sizeOfDim[dim]++
	b.begin[len(b.begin)-1] = idx + 1
	return idx, nil
}

// Build finalizes the builder into an immutable Abstract complex, deriving
// the coboundary table by transposing the boundary table.
func (b *AbstractBuilder) Build() (*Abstract, error) {
	size := 0
	if len(b.begin) > 0 {
		size = b.begin[len(b.begin)-1]
	}
	c := &Abstract{
		dim:        b.dim,
		sizeOfDim:  append([]int(nil), b.sizeOfDim...),
		begin:      append([]int(nil), b.begin...),
		boundary:   append([]chain.Chain(nil), b.boundary...),
		coboundary: make([]chain.Chain, size),
	}
	for i := range c.coboundary {
		c.coboundary[i] = chain.New()
	}
	for x, bd := range c.boundary {
		bd.ForEach(func(y int) { c.coboundary[y].Add(x) })
	}
	return c, nil
}
