package complex

import (
	"sort"

	"github.com/katalvlaran/discretemorse/chain"
)

// Cubical is a reference CubicalComplex implementation: a full D-dimensional
// grid of cubes. Each cell is encoded by a shape bitmask (which axes it is
// "extended" along) and a position in [0, TypeSize()); the shape-offset
// table TS gives each shape's block index, so a cell's linear index is
// TS[shape]*TypeSize() + position.
//
// Grid dimensions are given as the number of grid points per axis; a cell
// extended along axis i occupies the half-open interval [coord, coord+1],
// so the last grid point along an extended axis has no room to extend and
// is flagged RightFringe.
type Cubical struct {
	dims      []int // grid points per axis
	typeSize  int   // T = product(dims)
	tsOf      []int // shape -> block index, ordered by ascending popcount
	shapeOfTS []int // block index -> shape, inverse of tsOf

	dim         int
	sizeOfDim   []int
	begin       []int
	rightFringe []bool
	boundary    []chain.Chain
	coboundary  []chain.Chain
	topstar     [][]int
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}

// NewCubicalBuilder constructs a full cubical grid complex over the given
// per-axis grid-point counts (len(dims) = D, the number of axes).
func NewCubicalBuilder(dims []int) (*Cubical, error) {
	d := len(dims)
	if d == 0 {
		return nil, ErrBadDimension
	}
	typeSize := 1
	for _, n := range dims {
		if n < 1 {
			return nil, ErrBadDimension
		}
		typeSize *= n
	}

	numShapes := 1 << d
	shapes := make([]int, numShapes)
	for s := 0; s < numShapes; s++ {
		shapes[s] = s
	}
	sort.SliceStable(shapes, func(i, j int) bool {
		return popcount(shapes[i]) < popcount(shapes[j])
	})
	tsOf := make([]int, numShapes)
	for block, s := range shapes {
		tsOf[s] = block
	}

	c := &Cubical{
		dims:      append([]int(nil), dims...),
		typeSize:  typeSize,
		tsOf:      tsOf,
		shapeOfTS: shapes,
	}

	total := numShapes * typeSize
	c.boundary = make([]chain.Chain, total)
	c.coboundary = make([]chain.Chain, total)
	for i := range c.coboundary {
		c.coboundary[i] = chain.New()
	}
	c.rightFringe = make([]bool, total)

	// dimension bands: one per distinct popcount value 0..d
	c.dim = d
	c.sizeOfDim = make([]int, d+1)
	c.begin = make([]int, d+2)
	for block, s := range shapes {
		dimOfShape := popcount(s)
		c.sizeOfDim[dimOfShape] += typeSize
		c.begin[dimOfShape+1] = (block + 1) * typeSize
	}
	for dd := 1; dd <= d+1; dd++ {
		if c.begin[dd] < c.begin[dd-1] {
			c.begin[dd] = c.begin[dd-1]
		}
	}

	for block, shape := range shapes {
		for pos := 0; pos < typeSize; pos++ {
			x := block*typeSize + pos
			coords := decodePos(pos, dims)
			c.rightFringe[x] = isFringe(shape, coords, dims)
			c.boundary[x] = boundaryOf(shape, coords, dims, tsOf, typeSize)
		}
	}
	for x, bd := range c.boundary {
		bd.ForEach(func(y int) { c.coboundary[y].Add(x) })
	}

	c.topstar = make([][]int, total)
	topShape := numShapes - 1
	for x := 0; x < total; x++ {
		shape := c.CellShape(x)
		coords := decodePos(c.CellPos(x), dims)
		c.topstar[x] = topStarOf(shape, coords, dims, tsOf, typeSize, topShape)
	}

	return c, nil
}

// decodePos converts a flat position into per-axis coordinates, axis 0 varying fastest.
func decodePos(pos int, dims []int) []int {
	coords := make([]int, len(dims))
	for i, n := range dims {
		coords[i] = pos % n
		pos /= n
	}
	return coords
}

// encodePos is the inverse of decodePos.
func encodePos(coords []int, dims []int) int {
	pos := 0
	mult := 1
	for i, n := range dims {
		pos += coords[i] * mult
		mult *= n
	}
	return pos
}

func isFringe(shape int, coords []int, dims []int) bool {
	for i := range dims {
		if shape&(1<<i) != 0 && coords[i] >= dims[i]-1 {
			return true
		}
	}
	return false
}

func cellIndex(shape int, coords []int, dims []int, tsOf []int, typeSize int) int {
	return tsOf[shape]*typeSize + encodePos(coords, dims)
}

func boundaryOf(shape int, coords []int, dims []int, tsOf []int, typeSize int) chain.Chain {
	bd := chain.New()
	for i := range dims {
		bit := 1 << i
		if shape&bit == 0 {
			continue
		}
		faceShape := shape &^ bit
		// Lower face: same coordinate.
		bd.Add(cellIndex(faceShape, coords, dims, tsOf, typeSize))
		// Upper face: coordinate + 1, when in range.
		if coords[i]+1 < dims[i] {
			upper := append([]int(nil), coords...)
			upper[i]++
			bd.Add(cellIndex(faceShape, upper, dims, tsOf, typeSize))
		}
	}
	return bd
}

func topStarOf(shape int, coords []int, dims []int, tsOf []int, typeSize, topShape int) []int {
	free := make([]int, 0, len(dims))
	for i := range dims {
		if shape&(1<<i) == 0 {
			free = append(free, i)
		}
	}
	var out []int
	var rec func(k int, base []int)
	rec = func(k int, base []int) {
		if k == len(free) {
			cp := append([]int(nil), base...)
			out = append(out, cellIndex(topShape, cp, dims, tsOf, typeSize))
			return
		}
		axis := free[k]
		c := coords[axis]
		// Candidate lower-corners for the interval covering point c.
		candidates := []int{c - 1, c}
		seen := map[int]bool{}
		for _, lc := range candidates {
			if lc < 0 || lc > dims[axis]-2 || seen[lc] {
				continue
			}
			seen[lc] = true
			next := append([]int(nil), base...)
			next[axis] = lc
			rec(k+1, next)
		}
	}
	rec(0, append([]int(nil), coords...))
	return out
}

// Size returns the total number of cells.
func (c *Cubical) Size() int { return len(c.boundary) }

// Dimension returns the top dimension present in the complex.
func (c *Cubical) Dimension() int { return c.dim }

// SizeOfDim returns the number of cells of dimension d.
func (c *Cubical) SizeOfDim(d int) int {
	if d < 0 || d > c.dim {
		return 0
	}
	return c.sizeOfDim[d]
}

// Range returns the cell indices of dimension d, in ascending order.
func (c *Cubical) Range(d int) []int {
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
func (c *Cubical) DimOf(x int) int { return popcount(c.CellShape(x)) }

// Boundary returns the boundary of chain in.
func (c *Cubical) Boundary(in chain.Chain) (chain.Chain, error) {
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
func (c *Cubical) Coboundary(in chain.Chain) (chain.Chain, error) {
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
func (c *Cubical) Column(i int, cb func(x int)) error {
	if err := checkCell(i, c.Size()); err != nil {
		return err
	}
	c.boundary[i].ForEach(cb)
	return nil
}

// Row invokes cb for every cell in the coboundary of cell i.
func (c *Cubical) Row(i int, cb func(x int)) error {
	if err := checkCell(i, c.Size()); err != nil {
		return err
	}
	c.coboundary[i].ForEach(cb)
	return nil
}

// Closure returns the downward closure of cells under Boundary.
func (c *Cubical) Closure(cells []int) (map[int]struct{}, error) {
	return closureOf(c, cells)
}

// TypeSize returns T, the number of positions per cell shape.
func (c *Cubical) TypeSize() int { return c.typeSize }

// CellShape returns the shape bitmask of cell x.
func (c *Cubical) CellShape(x int) int { return c.shapeOfTS[x/c.typeSize] }

// CellPos returns the position of cell x within its shape block.
func (c *Cubical) CellPos(x int) int { return x % c.typeSize }

// RightFringe reports whether x is a fringe cell that must never be matched.
func (c *Cubical) RightFringe(x int) bool { return c.rightFringe[x] }

// TS returns the shape-offset table: TS()[shape] is the block index of shape.
func (c *Cubical) TS() []int { return c.tsOf }

// TopStar returns the top-dimensional cells containing x.
func (c *Cubical) TopStar(x int) []int { return c.topstar[x] }
