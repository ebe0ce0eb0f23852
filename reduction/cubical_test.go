package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/reduction"
)

// A 2x2 grid (four vertices, four edges, one 2-cell) under trivial grading
// reduces, via the cubical matcher, to a single critical 0-cell.
func TestHomology_FilledCubicalSquareReducesToSingleVertex(t *testing.T) {
	base, err := complex.NewCubicalBuilder([]int{2, 2})
	require.NoError(t, err)

	result, err := reduction.Homology(base)
	require.NoError(t, err)

	assert.Equal(t, 1, result.SizeOfDim(0))
	assert.Equal(t, 0, result.SizeOfDim(1))
	assert.Equal(t, 0, result.SizeOfDim(2))
}

// Cells above the truncation grade are excluded from the matching and from
// the resulting connection matrix, so the truncated reduction sees only the
// grade-0 subcomplex.
func TestConnectionMatrix_TruncationKeepsOnlyLowGradeCells(t *testing.T) {
	base, err := complex.NewCubicalBuilder([]int{2, 2})
	require.NoError(t, err)

	// Grade the lone 2-cell (and everything of dimension 2) at 1; the rest
	// of the square's boundary (dimension 0 and 1 cells) stays at grade 0.
	graded := complex.NewGradedComplex(base, func(x int) int {
		if base.DimOf(x) == 2 {
			return 1
		}
		return 0
	})

	result, err := reduction.ConnectionMatrix(graded, reduction.WithTruncate(0))
	require.NoError(t, err)

	// With the 2-cell truncated away, only the hollow square's boundary
	// remains: it reduces to one 0-ace and one 1-ace (a circle).
	assert.Equal(t, 1, result.Complex().SizeOfDim(0))
	assert.Equal(t, 1, result.Complex().SizeOfDim(1))
	assert.Equal(t, 0, result.Complex().SizeOfDim(2))
}
