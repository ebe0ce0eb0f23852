package morse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discretemorse/chain"
	"github.com/katalvlaran/discretemorse/complex"
	"github.com/katalvlaran/discretemorse/matching"
	"github.com/katalvlaran/discretemorse/morse"
)

// buildInterval constructs the 1-cube complex: two vertices and one edge
// joining them.
func buildInterval(t *testing.T) complex.Complex {
	t.Helper()
	b := complex.NewAbstractBuilder()
	v0, err := b.AddCell(0)
	require.NoError(t, err)
	v1, err := b.AddCell(0)
	require.NoError(t, err)
	_, err = b.AddCell(1, v0, v1)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestMorseComplex_IntervalReducesToSingleVertex(t *testing.T) {
	base := buildInterval(t)
	m, err := matching.ComputeMatching(base)
	require.NoError(t, err)

	mc, err := morse.New(base, m)
	require.NoError(t, err)

	assert.Equal(t, 1, mc.Size())
	assert.Equal(t, 0, mc.Dimension())
	assert.Equal(t, 1, mc.SizeOfDim(0))

	// The sole critical cell has zero boundary: H0 of an interval has rank 1.
	x := mc.Range(0)[0]
	bd, err := mc.Boundary(chain.New(x))
	require.NoError(t, err)
	assert.Equal(t, 0, bd.Len())
}

func TestMorseComplex_LowerLiftRoundTrip(t *testing.T) {
	base := buildInterval(t)
	m, err := matching.ComputeMatching(base)
	require.NoError(t, err)

	mc, err := morse.New(base, m)
	require.NoError(t, err)

	crit := mc.Range(0)[0]
	lifted, err := mc.Lift(chain.New(crit))
	require.NoError(t, err)
	assert.True(t, lifted.Len() > 0)

	lowered, err := mc.Lower(lifted)
	require.NoError(t, err)
	assert.True(t, lowered.Equal(chain.New(crit)))
}

func TestMorseComplex_IndexOutOfBoundsIsDetected(t *testing.T) {
	base := buildInterval(t)
	mc, err := morse.Reduce(base)
	require.NoError(t, err)

	_, err = mc.Boundary(chain.New(mc.Size()))
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)

	_, err = mc.Coboundary(chain.New(-1))
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)

	err = mc.Column(mc.Size(), func(int) {})
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)

	err = mc.Row(-1, func(int) {})
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)

	_, err = mc.Include([]int{mc.Size()})
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)

	_, err = mc.Lift(chain.New(mc.Size() + 3))
	assert.ErrorIs(t, err, morse.ErrIndexOutOfBounds)
}

func TestMorseComplex_BoundaryOfBoundaryIsZero(t *testing.T) {
	b := complex.NewAbstractBuilder()
	v0, _ := b.AddCell(0)
	v1, _ := b.AddCell(0)
	v2, _ := b.AddCell(0)
	e0, _ := b.AddCell(1, v0, v1)
	e1, _ := b.AddCell(1, v1, v2)
	e2, _ := b.AddCell(1, v0, v2)
	_, err := b.AddCell(2, e0, e1, e2)
	require.NoError(t, err)
	base, err := b.Build()
	require.NoError(t, err)

	m, err := matching.ComputeMatching(base)
	require.NoError(t, err)

	mc, err := morse.New(base, m)
	require.NoError(t, err)

	for d := 1; d <= mc.Dimension(); d++ {
		for _, x := range mc.Range(d) {
			bd, err := mc.Boundary(chain.New(x))
			require.NoError(t, err)
			bdbd, err := mc.Boundary(bd)
			require.NoError(t, err)
			assert.Equal(t, 0, bdbd.Len(), "boundary of boundary of cell %d must vanish", x)
		}
	}
}

func TestNewGraded_PropagatesBaseGrade(t *testing.T) {
	b := complex.NewAbstractBuilder()
	v0, _ := b.AddCell(0)
	v1, _ := b.AddCell(0)
	_, err := b.AddCell(1, v0, v1)
	require.NoError(t, err)
	base, err := b.Build()
	require.NoError(t, err)

	// v0 at grade 0; v1 and the edge at grade 1, so the closure property
	// holds (the edge's boundary contains v1).
	graded := complex.NewGradedComplex(base, func(x int) int {
		if x == v0 {
			return 0
		}
		return 1
	})

	m, err := matching.ComputeMatchingGraded(graded)
	require.NoError(t, err)

	gmc, err := morse.NewGraded(graded, m)
	require.NoError(t, err)

	// The edge cancels v1 within grade 1, leaving v0 as the sole critical
	// cell; its grade must be carried over from the base complex.
	require.Equal(t, 1, gmc.Complex().Size())
	for _, x := range gmc.Complex().Range(0) {
		assert.Equal(t, 0, gmc.Value(x))
	}
}

func TestReduce_ComputesMatchingInternally(t *testing.T) {
	base := buildInterval(t)

	mc, err := morse.Reduce(base)
	require.NoError(t, err)
	assert.Equal(t, 1, mc.Size())

	graded := complex.NewGradedComplex(base, func(int) int { return 0 })
	gmc, err := morse.ReduceGraded(graded)
	require.NoError(t, err)
	assert.Equal(t, 1, gmc.Complex().Size())
	assert.Equal(t, 0, gmc.Value(gmc.Complex().Range(0)[0]))
}

func TestNew_NilArguments(t *testing.T) {
	base := buildInterval(t)
	m, err := matching.ComputeMatching(base)
	require.NoError(t, err)

	_, err = morse.New(nil, m)
	assert.ErrorIs(t, err, morse.ErrNilComplex)

	_, err = morse.New(base, nil)
	assert.ErrorIs(t, err, morse.ErrNilMatching)
}
