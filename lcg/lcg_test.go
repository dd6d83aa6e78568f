package lcg_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/stretchr/testify/require"
)

func TestOfStepMatchesRepeatedNext(t *testing.T) {
	t.Parallel()

	s := big.NewInt(42)
	for k := 0; k <= 10; k++ {
		want := new(big.Int).Set(s)
		for i := 0; i < k; i++ {
			want = lcg.JAVA.Next(want)
		}

		step, err := lcg.JAVA.OfStep(int64(k))
		require.NoError(t, err)
		require.Equal(t, 0, want.Cmp(step.Next(s)), "k=%d", k)
	}
}

func TestOfStepRoundTrip(t *testing.T) {
	t.Parallel()

	s := big.NewInt(123456789)
	for _, k := range []int64{1, 2, 5, 17, 1000} {
		fwd, err := lcg.JAVA.OfStep(k)
		require.NoError(t, err)
		back, err := lcg.JAVA.OfStep(-k)
		require.NoError(t, err)

		got := back.Next(fwd.Next(s))
		require.Equal(t, 0, s.Cmp(got), "k=%d", k)
	}
}

func TestScrambleIsInvolutive(t *testing.T) {
	t.Parallel()

	for _, s := range []int64{0, 1, 42, 999999} {
		x := big.NewInt(s)
		once := lcg.JAVA.Scramble(x)
		twice := lcg.JAVA.Scramble(once)
		require.Equal(t, 0, x.Cmp(twice))
	}
}

func TestModPowerOfTwoMatchesEuclidean(t *testing.T) {
	t.Parallel()

	require.True(t, lcg.JAVA.PowerOfTwo)
	for _, x := range []int64{-5, 0, 7, 1 << 50} {
		got := lcg.JAVA.Mod(big.NewInt(x))
		want := new(big.Int).Mod(big.NewInt(x), lcg.JAVA.M)
		require.Equal(t, 0, want.Cmp(got))
	}
}

func TestRandomSkipMatchesNextSeed(t *testing.T) {
	t.Parallel()

	a := lcg.NewRandom(lcg.JAVA, big.NewInt(7))
	b := lcg.NewRandom(lcg.JAVA, big.NewInt(7))

	for i := 0; i < 5; i++ {
		a.NextSeed()
	}
	require.NoError(t, b.Skip(5))
	require.Equal(t, 0, a.Seed().Cmp(b.Seed()))
}

func TestAlternateFamiliesMatchRepeatedNext(t *testing.T) {
	t.Parallel()

	for name, l := range map[string]lcg.LCG{
		"NumericalRecipes": lcg.NumericalRecipes,
		"Borland":          lcg.Borland,
	} {
		s := big.NewInt(42)
		for k := 0; k <= 5; k++ {
			want := new(big.Int).Set(s)
			for i := 0; i < k; i++ {
				want = l.Next(want)
			}

			step, err := l.OfStep(int64(k))
			require.NoError(t, err, name)
			require.Equal(t, 0, want.Cmp(step.Next(s)), "%s k=%d", name, k)
		}
	}
}

func TestAlternateFamiliesOfStepRoundTrip(t *testing.T) {
	t.Parallel()

	for name, l := range map[string]lcg.LCG{
		"NumericalRecipes": lcg.NumericalRecipes,
		"Borland":          lcg.Borland,
	} {
		s := big.NewInt(123456789)
		for _, k := range []int64{1, 2, 5, 17} {
			fwd, err := l.OfStep(k)
			require.NoError(t, err, name)
			back, err := l.OfStep(-k)
			require.NoError(t, err, name)

			got := back.Next(fwd.Next(s))
			require.Equal(t, 0, s.Cmp(got), "%s k=%d", name, k)
		}
	}
}

func TestUnsupportedStepWhenNotInvertible(t *testing.T) {
	t.Parallel()

	// Multiplier 2 is never invertible modulo any even modulus.
	l := lcg.New(big.NewInt(2), big.NewInt(1), big.NewInt(16))
	_, err := l.OfStep(-1)
	require.ErrorIs(t, err, lcg.ErrUnsupportedStep)
}
