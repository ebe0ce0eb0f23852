package grading

import "github.com/katalvlaran/discretemorse/complex"

// ConstructGrading extends a grading defined on the top-dimensional cells
// of a cubical complex downward: topCellGrading(v) grades the top-dimensional
// cell with cell index v, and every lower-dimensional cell is graded by the
// minimum grade among the top-dimensional cells in its star. A cell with an
// empty star (no top-dimensional cell contains it) grades to -1.
func ConstructGrading(c complex.Complex, topCellGrading func(v int) int) (func(x int) int, error) {
	cc, ok := complex.AsCubical(c)
	if !ok {
		return nil, ErrNotCubical
	}

	dim := cc.Dimension()
	numNonTop := cc.Size() - cc.SizeOfDim(dim)

	topGrades := make([]int, cc.SizeOfDim(dim))
	for i := range topGrades {
		topGrades[i] = topCellGrading(numNonTop + i)
	}

	return func(x int) int {
		if x >= numNonTop {
			return topGrades[x-numNonTop]
		}
		best := -1
		found := false
		for _, t := range cc.TopStar(x) {
			g := topGrades[t-numNonTop]
			if !found || g < best {
				best = g
				found = true
			}
		}
		return best
	}, nil
}

// InclusionGrading grades every cell in the closure of included as 0 and
// every other cell as 1, the two-grade complex this package's reduction
// pipeline truncates at grade 0 to recover the subcomplex spanned by
// included.
func InclusionGrading(c complex.Complex, included map[int]struct{}) (func(x int) int, error) {
	seed := make([]int, 0, len(included))
	for x := range included {
		seed = append(seed, x)
	}
	closed, err := c.Closure(seed)
	if err != nil {
		return nil, err
	}

	return func(x int) int {
		if _, ok := closed[x]; ok {
			return 0
		}
		return 1
	}, nil
}

// CubicalNerve grades a cubical complex by membership in the nerve of the
// vertex set positions: a cell x above maxDim grades to 1; otherwise x
// grades to 0 only if every vertex in its closure has a position in
// positions, and 1 if any vertex falls outside it. Grades are precomputed
// for the whole complex so the returned closure is a plain array lookup.
func CubicalNerve(c complex.CubicalComplex, positions map[int]struct{}, maxDim int) (func(x int) int, error) {
	vertexCount := c.SizeOfDim(0)

	grades := make([]int, c.Size())
	for x := range grades {
		if c.DimOf(x) > maxDim {
			grades[x] = 1
			continue
		}
		closed, err := c.Closure([]int{x})
		if err != nil {
			return nil, err
		}
		for y := range closed {
			if y >= vertexCount {
				continue
			}
			if _, ok := positions[c.CellPos(y)]; !ok {
				grades[x] = 1
				break
			}
		}
	}

	return func(x int) int { return grades[x] }, nil
}
