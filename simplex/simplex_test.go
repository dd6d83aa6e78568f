package simplex_test

import (
	"testing"

	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
	"github.com/katalvlaran/seedlattice/simplex"
	"github.com/stretchr/testify/require"
)

func vec(vals ...int64) linalg.Vector {
	r := make([]rational.Rational, len(vals))
	for i, v := range vals {
		r[i] = rational.NewInt(v)
	}

	return linalg.VectorFromSlice(r)
}

func TestBoxPolytopeMinMax(t *testing.T) {
	t.Parallel()

	b := simplex.NewBuilder()
	require.NoError(t, b.Add(vec(1, 0), simplex.GE, rational.NewInt(0)))
	require.NoError(t, b.Add(vec(1, 0), simplex.LE, rational.NewInt(5)))
	require.NoError(t, b.Add(vec(0, 1), simplex.GE, rational.NewInt(-3)))
	require.NoError(t, b.Add(vec(0, 1), simplex.LE, rational.NewInt(3)))

	lp, err := b.Build()
	require.NoError(t, err)

	_, maxVal, err := lp.Maximize(vec(1, 1))
	require.NoError(t, err)
	require.True(t, maxVal.Equal(rational.NewInt(8)))

	_, minVal, err := lp.Minimize(vec(1, 1))
	require.NoError(t, err)
	require.True(t, minVal.Equal(rational.NewInt(-3)))
}

func TestAddBoundedBasis(t *testing.T) {
	t.Parallel()

	identity, err := linalg.Identity(2)
	require.NoError(t, err)

	b := simplex.NewBuilder()
	require.NoError(t, b.AddBoundedBasis(vec(-2, -2), identity, vec(4, 4)))

	lp, err := b.Build()
	require.NoError(t, err)

	vertex, val, err := lp.Maximize(vec(1, -1))
	require.NoError(t, err)
	require.True(t, val.Equal(rational.NewInt(6)))
	require.True(t, vertex.Get(0).Equal(rational.NewInt(4)))
	require.True(t, vertex.Get(1).Equal(rational.NewInt(-2)))
}

func TestInfeasible(t *testing.T) {
	t.Parallel()

	b := simplex.NewBuilder()
	require.NoError(t, b.Add(vec(1), simplex.LE, rational.NewInt(1)))
	require.NoError(t, b.Add(vec(1), simplex.GE, rational.NewInt(2)))

	_, err := b.Build()
	require.ErrorIs(t, err, simplex.ErrInfeasible)
}

func TestWithEqualityDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	b := simplex.NewBuilder()
	require.NoError(t, b.AddBoundedBasis(vec(0), mustMatrix(t, 1), vec(10)))
	lp, err := b.Build()
	require.NoError(t, err)

	fixed, err := lp.WithEquality(vec(1), rational.NewInt(4))
	require.NoError(t, err)

	_, val, err := fixed.Maximize(vec(1))
	require.NoError(t, err)
	require.True(t, val.Equal(rational.NewInt(4)))

	_, origVal, err := lp.Maximize(vec(1))
	require.NoError(t, err)
	require.True(t, origVal.Equal(rational.NewInt(10)), "original LP must be unaffected by WithEquality")
}

func mustMatrix(t *testing.T, diag int64) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(1, 1)
	require.NoError(t, err)
	m.Set(0, 0, rational.NewInt(diag))

	return m
}
