package complex

import "github.com/katalvlaran/discretemorse/chain"

// Complex is the contract consumed by matching, morse and reduction. Cells
// are opaque nonnegative integers in [0, Size()); dimensions occupy dense,
// contiguous, ascending ranges.
type Complex interface {
	// Size returns the total number of cells.
	Size() int

	// Dimension returns the top dimension present in the complex.
	Dimension() int

	// SizeOfDim returns the number of cells of dimension d.
	SizeOfDim(d int) int

	// Range returns the cell indices of dimension d, in ascending order.
	Range(d int) []int

	// DimOf returns the dimension of cell x.
	DimOf(x int) int

	// Boundary returns the boundary of a chain: the symmetric difference
	// of the boundaries of its cells. Returns ErrIndexOutOfBounds if the
	// chain names a cell outside [0, Size()).
	Boundary(c chain.Chain) (chain.Chain, error)

	// Coboundary returns the coboundary of a chain, dually to Boundary.
	Coboundary(c chain.Chain) (chain.Chain, error)

	// Column invokes cb once for every cell in the boundary of cell i.
	// Returns ErrIndexOutOfBounds if i is outside [0, Size()).
	Column(i int, cb func(x int)) error

	// Row invokes cb once for every cell in the coboundary of cell i.
	// Returns ErrIndexOutOfBounds if i is outside [0, Size()).
	Row(i int, cb func(x int)) error

	// Closure returns the smallest set of cells containing cells and
	// closed under Boundary (i.e. every face of every member is also a
	// member).
	Closure(cells []int) (map[int]struct{}, error)
}

// CubicalCapabilities is the extra contract a cubical complex exposes on
// top of Complex: per-axis shape/position indexing, a fringe predicate, the
// shape-offset table, and a top-star enumerator.
type CubicalCapabilities interface {
	// TypeSize returns T, the number of positions per cell shape.
	TypeSize() int

	// CellShape returns the shape bitmask of cell x (which axes are
	// "extended").
	CellShape(x int) int

	// CellPos returns the position (0..TypeSize()-1) of cell x within its shape.
	CellPos(x int) int

	// RightFringe reports whether x is a boundary-of-embedding cell that
	// must never be matched.
	RightFringe(x int) bool

	// TS returns the shape-offset table: TS()[shape] is the block index of
	// shape, so shape's cells start at index TS()[shape]*TypeSize().
	TS() []int

	// TopStar returns the top-dimensional cells containing x.
	TopStar(x int) []int
}

// CubicalComplex is a Complex with the cubical capability bundle.
type CubicalComplex interface {
	Complex
	CubicalCapabilities
}

// AsCubical type-asserts c as a CubicalComplex, reporting false if it does
// not carry the cubical capability bundle. This is the dispatch
// point used by matching.ComputeMatching to choose between CubicalMatcher
// and GenericMatcher.
func AsCubical(c Complex) (CubicalComplex, bool) {
	cc, ok := c.(CubicalComplex)
	return cc, ok
}

// GradedComplex layers a grading value: cell -> int on top of a Complex.
type GradedComplex struct {
	c     Complex
	value func(x int) int
}

// NewGradedComplex wraps c with the grading function value. It does not
// eagerly validate the closure property; GenericMatcher validates it lazily
// as it consumes boundaries, and CubicalMatcher does not check it.
func NewGradedComplex(c Complex, value func(x int) int) *GradedComplex {
	return &GradedComplex{c: c, value: value}
}

// Complex returns the underlying Complex.
func (g *GradedComplex) Complex() Complex { return g.c }

// Value returns the grade of cell x.
func (g *GradedComplex) Value(x int) int { return g.value(x) }
