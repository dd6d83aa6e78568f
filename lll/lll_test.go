package lll_test

import (
	"testing"

	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/lll"
	"github.com/katalvlaran/seedlattice/rational"
	"github.com/stretchr/testify/require"
)

func colMatrix(t *testing.T, cols [][]int64) *linalg.Matrix {
	t.Helper()
	w := len(cols)
	h := len(cols[0])
	m, err := linalg.NewMatrix(w, h)
	require.NoError(t, err)
	for c := 0; c < w; c++ {
		for r := 0; r < h; r++ {
			m.Set(c, r, rational.NewInt(cols[c][r]))
		}
	}

	return m
}

func sqNorm(t *testing.T, m *linalg.Matrix, c int) rational.Rational {
	t.Helper()
	col := m.Column(c)
	d, err := col.Dot(col)
	require.NoError(t, err)

	return d
}

// TestLLLSanity reproduces spec §8 scenario 6: a square 3x3 basis whose
// reduced shortest vector must satisfy the classical LLL norm bound and
// whose absolute determinant (a unimodular-transform invariant) must be
// preserved.
func TestLLLSanity(t *testing.T) {
	t.Parallel()

	basis := colMatrix(t, [][]int64{{1, -1, 3}, {1, 0, 5}, {1, 2, 6}})

	detBefore, err := linalg.Determinant(basis)
	require.NoError(t, err)

	reduced, err := lll.Reduce(basis)
	require.NoError(t, err)
	require.Equal(t, 3, reduced.Width())

	detAfter, err := linalg.Determinant(reduced)
	require.NoError(t, err)
	require.True(t, detBefore.Abs().Equal(detAfter.Abs()), "LLL is a unimodular transform: |det| preserved")

	minSq := sqNorm(t, reduced, 0)
	for c := 1; c < reduced.Width(); c++ {
		if n := sqNorm(t, reduced, c); n.Less(minSq) {
			minSq = n
		}
	}
	shortest := sqNorm(t, reduced, 0)
	bound := rational.NewInt(2).Mul(minSq.Ceil())
	require.True(t, shortest.Cmp(bound) <= 0, "shortest vector respects the classical LLL bound")
}

// TestLLLStripsRedundantGenerator exercises the n+1-generators-for-rank-n
// lattice case the reverser pipeline hands to LLL: one column is an
// integer combination of the others, so Reduce must strip it.
func TestLLLStripsRedundantGenerator(t *testing.T) {
	t.Parallel()

	// Columns: e0, e1, e0+e1 (redundant, rank 2 in a 2-generator set of
	// width 3).
	basis := colMatrix(t, [][]int64{{1, 0}, {0, 1}, {1, 1}})

	reduced, err := lll.Reduce(basis)
	require.NoError(t, err)
	require.Equal(t, 2, reduced.Width(), "the redundant generator is stripped")
}

func TestLLLEmptyBasis(t *testing.T) {
	t.Parallel()

	basis, err := linalg.NewMatrix(0, 3)
	require.NoError(t, err)

	reduced, err := lll.Reduce(basis)
	require.NoError(t, err)
	require.Equal(t, 0, reduced.Width())
}

func TestLLLCustomDelta(t *testing.T) {
	t.Parallel()

	basis := colMatrix(t, [][]int64{{1, -1, 3}, {1, 0, 5}, {1, 2, 6}})
	half, err := rational.NewFrac(1, 2)
	require.NoError(t, err)

	_, err = lll.Reduce(basis, lll.WithDelta(half))
	require.NoError(t, err)
}
