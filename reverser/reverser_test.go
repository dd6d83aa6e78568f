package reverser_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/katalvlaran/seedlattice/reverser"
	"github.com/katalvlaran/seedlattice/rngcall"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, rv *reverser.Reverser) []*big.Int {
	t.Helper()

	seeds, err := rv.SolveJava()
	require.NoError(t, err)

	var out []*big.Int
	for s := range seeds {
		out = append(out, s)
	}

	return out
}

// TestSingleLongRecovery reproduces spec §8 scenario 2: a Reverser given
// one exact Long observation must recover the scrambled seed that
// produced it, and every recovered candidate must itself reproduce that
// exact value on replay.
func TestSingleLongRecovery(t *testing.T) {
	t.Parallel()

	scrambled := lcg.JAVA.Scramble(big.NewInt(123456789))
	probe := lcg.NewRandom(lcg.JAVA, scrambled)
	observed := rngcall.NewJavaRandom(probe).NextLong()

	call, err := rngcall.NewLong(observed, observed)
	require.NoError(t, err)

	rv := reverser.New()
	rv.AddCall(call)

	candidates := collect(t, rv)
	require.NotEmpty(t, candidates)

	found := false
	for _, s := range candidates {
		replay := lcg.NewRandom(lcg.JAVA, s)
		require.Equal(t, observed, rngcall.NewJavaRandom(replay).NextLong())
		if s.Cmp(scrambled) == 0 {
			found = true
		}
	}
	require.True(t, found, "the true scrambled seed must be among the recovered candidates")
}

// TestFloatWithRangeIsSubsetOfInclusive reproduces spec §8 scenario 3:
// every seed recovered under the strict (exclusive) range must also
// satisfy the inclusive range, and must replay to a value strictly
// inside (0.25, 0.5).
func TestFloatWithRangeIsSubsetOfInclusive(t *testing.T) {
	t.Parallel()

	inclusive, err := rngcall.NewFloat(0.25, 0.5, false, false)
	require.NoError(t, err)
	exclusive, err := rngcall.NewFloat(0.25, 0.5, true, true)
	require.NoError(t, err)

	rvIncl := reverser.New()
	rvIncl.AddCall(inclusive)
	rvExcl := reverser.New()
	rvExcl.AddCall(exclusive)

	inclSeeds := collect(t, rvIncl)
	exclSeeds := collect(t, rvExcl)
	require.NotEmpty(t, inclSeeds)

	inclSet := make(map[string]bool, len(inclSeeds))
	for _, s := range inclSeeds {
		inclSet[s.String()] = true
	}

	for _, s := range exclSeeds {
		require.True(t, inclSet[s.String()], "every exclusive-range seed must also satisfy the inclusive range")

		replay := lcg.NewRandom(lcg.JAVA, s)
		v := float64(rngcall.NewJavaRandom(replay).NextFloat())
		require.Greater(t, v, 0.25)
		require.Less(t, v, 0.5)
	}
}

// TestSkippedFilterSurvivesWithGap reproduces spec §8 scenario 4: a
// filter_only call followed by an untracked skip and a real call must
// still validate correctly across the gap, and the filter_only entry
// must not appear in the lattice (the Reverser must still succeed with
// only the real call's SeedCall contributing dimensions).
func TestSkippedFilterSurvivesWithGap(t *testing.T) {
	t.Parallel()

	scrambled := lcg.JAVA.Scramble(big.NewInt(987654321))
	probe := lcg.NewRandom(lcg.JAVA, scrambled)
	jr := rngcall.NewJavaRandom(probe)

	observedFirst := jr.NextInt()
	require.NoError(t, probe.Skip(1))
	observedSecond := jr.NextInt()

	firstCall, err := rngcall.NewInt(observedFirst, observedFirst)
	require.NoError(t, err)
	secondCall, err := rngcall.NewInt(observedSecond, observedSecond)
	require.NoError(t, err)

	rv := reverser.New()
	rv.AddFilter(firstCall)
	rv.Skip()
	rv.AddCall(secondCall)

	candidates := collect(t, rv)
	require.NotEmpty(t, candidates)

	found := false
	for _, s := range candidates {
		replay := lcg.NewRandom(lcg.JAVA, s)
		replayJR := rngcall.NewJavaRandom(replay)

		require.Equal(t, observedFirst, replayJR.NextInt())
		require.NoError(t, replay.Skip(1))
		require.Equal(t, observedSecond, replayJR.NextInt())

		if s.Cmp(scrambled) == 0 {
			found = true
		}
	}
	require.True(t, found, "the true scrambled seed must survive the filtered, gapped transcript")
}

func TestSolveRejectsEmptyTranscript(t *testing.T) {
	t.Parallel()

	rv := reverser.New()
	_, err := rv.SolveJava()
	require.ErrorIs(t, err, reverser.ErrNoSeedCalls)
}
