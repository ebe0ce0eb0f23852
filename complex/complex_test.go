package complex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discretemorse/chain"
	"github.com/katalvlaran/discretemorse/complex"
)

func buildTriangleBoundary(t *testing.T) (*complex.Abstract, map[string]int) {
	t.Helper()
	b := complex.NewAbstractBuilder()
	v0, err := b.AddCell(0)
	require.NoError(t, err)
	v1, err := b.AddCell(0)
	require.NoError(t, err)
	v2, err := b.AddCell(0)
	require.NoError(t, err)
	e0, err := b.AddCell(1, v0, v1)
	require.NoError(t, err)
	e1, err := b.AddCell(1, v1, v2)
	require.NoError(t, err)
	e2, err := b.AddCell(1, v0, v2)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)
	return c, map[string]int{"v0": v0, "v1": v1, "v2": v2, "e0": e0, "e1": e1, "e2": e2}
}

func TestAbstract_BoundaryAndCoboundaryAreTransposes(t *testing.T) {
	c, ids := buildTriangleBoundary(t)

	bd, err := c.Boundary(chain.New(ids["e0"]))
	require.NoError(t, err)
	assert.True(t, bd.Equal(chain.New(ids["v0"], ids["v1"])))

	var coboundaryOfV1 []int
	err = c.Row(ids["v1"], func(x int) { coboundaryOfV1 = append(coboundaryOfV1, x) })
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{ids["e0"], ids["e1"]}, coboundaryOfV1)
}

func TestAbstract_ClosureReachesAllFaces(t *testing.T) {
	c, ids := buildTriangleBoundary(t)

	closed, err := c.Closure([]int{ids["e0"]})
	require.NoError(t, err)
	assert.Contains(t, closed, ids["v0"])
	assert.Contains(t, closed, ids["v1"])
	assert.NotContains(t, closed, ids["v2"])
}

func TestAbstract_IndexOutOfBoundsIsDetected(t *testing.T) {
	c, ids := buildTriangleBoundary(t)

	_, err := c.Boundary(chain.New(c.Size()))
	assert.ErrorIs(t, err, complex.ErrIndexOutOfBounds)

	_, err = c.Coboundary(chain.New(-1))
	assert.ErrorIs(t, err, complex.ErrIndexOutOfBounds)

	err = c.Column(c.Size(), func(int) {})
	assert.ErrorIs(t, err, complex.ErrIndexOutOfBounds)

	err = c.Row(-1, func(int) {})
	assert.ErrorIs(t, err, complex.ErrIndexOutOfBounds)

	_, err = c.Closure([]int{ids["e0"], c.Size() + 7})
	assert.ErrorIs(t, err, complex.ErrIndexOutOfBounds)
}

func TestAbstractBuilder_RejectsOutOfOrderDimension(t *testing.T) {
	b := complex.NewAbstractBuilder()
	_, err := b.AddCell(1)
	assert.Error(t, err)

	v0, err := b.AddCell(0)
	require.NoError(t, err)
	_, err = b.AddCell(1, v0, v0+100)
	assert.ErrorIs(t, err, complex.ErrUnknownBoundaryCell)
}

func TestCubical_BoundaryOfBoundaryVanishes(t *testing.T) {
	c, err := complex.NewCubicalBuilder([]int{3, 3})
	require.NoError(t, err)

	for d := 1; d <= c.Dimension(); d++ {
		for _, x := range c.Range(d) {
			if c.RightFringe(x) {
				continue
			}
			bd, err := c.Boundary(chain.New(x))
			require.NoError(t, err)
			bdbd, err := c.Boundary(bd)
			require.NoError(t, err)
			assert.Equal(t, 0, bdbd.Len(), "cell %d", x)
		}
	}
}

func TestCubical_RightFringeExcludesLastGridLine(t *testing.T) {
	c, err := complex.NewCubicalBuilder([]int{3})
	require.NoError(t, err)

	e0 := c.TS()[1]*c.TypeSize() + 0
	e2 := c.TS()[1]*c.TypeSize() + 2

	assert.False(t, c.RightFringe(e0))
	assert.True(t, c.RightFringe(e2))
}

func TestAsCubical(t *testing.T) {
	cubical, err := complex.NewCubicalBuilder([]int{2})
	require.NoError(t, err)
	_, ok := complex.AsCubical(cubical)
	assert.True(t, ok)

	b := complex.NewAbstractBuilder()
	_, err = b.AddCell(0)
	require.NoError(t, err)
	abstract, err := b.Build()
	require.NoError(t, err)
	_, ok = complex.AsCubical(abstract)
	assert.False(t, ok)
}

func TestGradedComplex_ValueAndComplexAccessors(t *testing.T) {
	b := complex.NewAbstractBuilder()
	v0, err := b.AddCell(0)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)

	graded := complex.NewGradedComplex(c, func(x int) int { return x + 1 })
	assert.Equal(t, c, graded.Complex())
	assert.Equal(t, v0+1, graded.Value(v0))
}
