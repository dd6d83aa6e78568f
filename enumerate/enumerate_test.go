package enumerate_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/seedlattice/enumerate"
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

func key(v linalg.Vector) string {
	s := ""
	for i := 0; i < v.Size(); i++ {
		s += v.Get(i).String() + ","
	}

	return s
}

// boxLP builds the trivial basis=identity box [lo,hi]^n LP used by every
// test here: with B = I, B^-1 = I too, so the lattice coordinates are
// exactly the y-space coordinates.
func boxLP(t *testing.T, n int, lo, hi int64) *simplex.LinearProgram {
	t.Helper()

	identity, err := linalg.Identity(n)
	require.NoError(t, err)

	loVec := make([]int64, n)
	hiVec := make([]int64, n)
	for i := range loVec {
		loVec[i] = lo
		hiVec[i] = hi
	}

	b := simplex.NewBuilder()
	require.NoError(t, b.AddBoundedBasis(vec(loVec...), identity, vec(hiVec...)))
	lp, err := b.Build()
	require.NoError(t, err)

	return lp
}

func TestSequenceEnumeratesFullBox(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 2, -2, 4)
	identity, err := linalg.Identity(2)
	require.NoError(t, err)

	seq, err := enumerate.New(identity, lp, []int{0, 1})
	require.NoError(t, err)

	seen := map[string]bool{}
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		seen[key(v)] = true
	}

	require.Len(t, seen, 49) // 7 x 7 integers in [-2,4]
	require.True(t, seen[key(vec(-2, -2))])
	require.True(t, seen[key(vec(4, 4))])
	require.False(t, seen[key(vec(5, 0))])
}

func TestSequenceHonorsPermutedOrder(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 2, 0, 1)
	identity, err := linalg.Identity(2)
	require.NoError(t, err)

	// order[0] = 1 means depth-0's lattice coordinate lands in the
	// vertex's index 1, not index 0.
	seq, err := enumerate.New(identity, lp, []int{1, 0})
	require.NoError(t, err)

	seen := map[string]bool{}
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		seen[key(v)] = true
	}

	require.Len(t, seen, 4)
	for _, want := range []linalg.Vector{vec(0, 0), vec(0, 1), vec(1, 0), vec(1, 1)} {
		require.True(t, seen[key(want)])
	}
}

func TestSequenceRejectsDimensionMismatch(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 2, 0, 1)
	identity, err := linalg.Identity(3)
	require.NoError(t, err)

	_, err = enumerate.New(identity, lp, []int{0, 1, 2})
	require.ErrorIs(t, err, enumerate.ErrDimensionMismatch)
}

func TestSplitPartitionsWithoutOverlapOrLoss(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 1, -5, 5)
	identity, err := linalg.Identity(1)
	require.NoError(t, err)

	whole, err := enumerate.New(identity, lp, []int{0})
	require.NoError(t, err)

	left, right, ok := whole.Split()
	require.True(t, ok)

	seen := map[string]bool{}
	for _, s := range []enumerate.Sequence{left, right} {
		for {
			v, ok := s.Next()
			if !ok {
				break
			}
			k := key(v)
			require.False(t, seen[k], "split halves must not overlap: %s", k)
			seen[k] = true
		}
	}

	require.Len(t, seen, 11) // integers in [-5, 5]
}

func TestSplitFailsOnceDescended(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 2, 0, 3)
	identity, err := linalg.Identity(2)
	require.NoError(t, err)

	seq, err := enumerate.New(identity, lp, []int{0, 1})
	require.NoError(t, err)

	_, ok := seq.Next() // descends past the root frame
	require.True(t, ok)

	_, _, splitOK := seq.Split()
	require.False(t, splitOK)
}

func TestRunDrainsConcurrentlyWithoutDuplicatesOrLoss(t *testing.T) {
	t.Parallel()

	lp := boxLP(t, 2, -3, 3)
	identity, err := linalg.Identity(2)
	require.NoError(t, err)

	seq, err := enumerate.New(identity, lp, []int{0, 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := map[string]bool{}
	count := 0
	for v := range enumerate.Run(ctx, seq, 4) {
		k := key(v)
		require.False(t, seen[k], "duplicate vertex from concurrent run: %s", k)
		seen[k] = true
		count++
	}

	require.Equal(t, 49, count, fmt.Sprintf("expected 7x7 box, got %d", count))
}
