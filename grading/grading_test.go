package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/grading"
)

func TestConstructGrading_MinOverTopStar(t *testing.T) {
	c, err := complex.NewCubicalBuilder([]int{3})
	require.NoError(t, err)

	v0, v1, v2 := 0, 1, 2
	e0 := c.TS()[1]*c.TypeSize() + 0
	e1 := c.TS()[1]*c.TypeSize() + 1
	e2 := c.TS()[1]*c.TypeSize() + 2

	// topCellGrading is keyed by the real top-cell index v, not by its
	// 0-based position among top cells.
	topGrades := map[int]int{e0: 0, e1: 5, e2: 99}
	grade, err := grading.ConstructGrading(c, func(v int) int { return topGrades[v] })
	require.NoError(t, err)

	assert.Equal(t, 0, grade(v0))
	assert.Equal(t, 0, grade(v1))
	assert.Equal(t, 5, grade(v2))
	assert.Equal(t, 0, grade(e0))
	assert.Equal(t, 5, grade(e1))
}

func TestConstructGrading_RejectsNonCubical(t *testing.T) {
	b := complex.NewAbstractBuilder()
	_, err := b.AddCell(0)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)

	_, err = grading.ConstructGrading(c, func(int) int { return 0 })
	assert.ErrorIs(t, err, grading.ErrNotCubical)
}

func TestInclusionGrading_ClosureIsZeroRestIsOne(t *testing.T) {
	b := complex.NewAbstractBuilder()
	v0, _ := b.AddCell(0)
	v1, _ := b.AddCell(0)
	v2, _ := b.AddCell(0)
	e0, err := b.AddCell(1, v0, v1)
	require.NoError(t, err)
	_, err = b.AddCell(1, v1, v2)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)

	grade, err := grading.InclusionGrading(c, map[int]struct{}{e0: {}})
	require.NoError(t, err)

	assert.Equal(t, 0, grade(v0))
	assert.Equal(t, 0, grade(v1))
	assert.Equal(t, 0, grade(e0))
	assert.Equal(t, 1, grade(v2))
}

func TestCubicalNerve_GradesByVertexMembership(t *testing.T) {
	c, err := complex.NewCubicalBuilder([]int{3})
	require.NoError(t, err)

	// Only positions {0, 1} (vertices v0, v1) are in the nerve.
	positions := map[int]struct{}{0: {}, 1: {}}
	grade, err := grading.CubicalNerve(c, positions, c.Dimension())
	require.NoError(t, err)

	e0 := c.TS()[1]*c.TypeSize() + 0 // spans v0, v1: both in positions
	e1 := c.TS()[1]*c.TypeSize() + 1 // spans v1, v2: v2 not in positions

	assert.Equal(t, 0, grade(e0))
	assert.Equal(t, 1, grade(e1))
}
