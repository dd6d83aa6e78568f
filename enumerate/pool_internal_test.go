package enumerate

import (
	"testing"

	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
	"github.com/katalvlaran/seedlattice/simplex"
	"github.com/stretchr/testify/require"
)

func boxSequence(t *testing.T, lo, hi int64) Sequence {
	t.Helper()

	identity, err := linalg.Identity(1)
	require.NoError(t, err)

	loVec, err := linalg.NewVector(1)
	require.NoError(t, err)
	loVec.Set(0, rational.NewInt(lo))
	hiVec, err := linalg.NewVector(1)
	require.NoError(t, err)
	hiVec.Set(0, rational.NewInt(hi))

	b := simplex.NewBuilder()
	require.NoError(t, b.AddBoundedBasis(loVec, identity, hiVec))
	lp, err := b.Build()
	require.NoError(t, err)

	seq, err := New(identity, lp, []int{0})
	require.NoError(t, err)

	return seq
}

// TestPresplitProducesIndependentPieces guards against Run silently
// degrading to a single goroutine: presplit must actually divide the
// root into multiple Sequences whenever the range is wide enough to
// support it, and those pieces must partition the space exactly.
func TestPresplitProducesIndependentPieces(t *testing.T) {
	t.Parallel()

	seq := boxSequence(t, 0, 99) // 100 integers, plenty to split 4 ways
	pieces := presplit(seq, 4)
	require.Len(t, pieces, 4)

	seen := map[string]bool{}
	count := 0
	for _, p := range pieces {
		for {
			v, ok := p.Next()
			if !ok {
				break
			}
			k := v.Get(0).String()
			require.False(t, seen[k], "presplit pieces overlap at %s", k)
			seen[k] = true
			count++
		}
	}
	require.Equal(t, 100, count)
}

// TestPresplitStopsWhenRangeExhausted verifies presplit never fabricates
// empty or duplicate pieces when the range is narrower than the worker
// count: splitting a single-point range must simply stop.
func TestPresplitStopsWhenRangeExhausted(t *testing.T) {
	t.Parallel()

	seq := boxSequence(t, 0, 0) // a single integer, unsplittable
	pieces := presplit(seq, 4)
	require.Len(t, pieces, 1)
}
