package rngcall

import (
	"math"
	"math/big"

	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/katalvlaran/seedlattice/rational"
)

func pow2(e uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), e) }

// floorDivBig returns ⌊a/b⌋ for b > 0, i.e. rounding toward negative
// infinity rather than Go's truncating Quo.
func floorDivBig(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}

	return q
}

func boundFromInts(lo, hi *big.Int) SeedCall {
	return SeedCall{Min: rational.NewBigInt(lo), Max: rational.NewBigInt(hi)}
}

// Boolean observes a java.util.Random.nextBoolean() call: V is the
// observed 0/1 value.
type Boolean struct {
	V int
}

// NewBoolean validates v ∈ {0, 1}.
func NewBoolean(v int) (Boolean, error) {
	if v != 0 && v != 1 {
		return Boolean{}, ErrInvalidRange
	}

	return Boolean{V: v}, nil
}

func (c Boolean) Skips() int { return 1 }

// ToSeed: s ∈ [v·2⁴⁷, v·2⁴⁷ + 2⁴⁷−1].
func (c Boolean) ToSeed() []SeedCall {
	base := new(big.Int).Mul(big.NewInt(int64(c.V)), pow2(47))
	top := new(big.Int).Add(base, new(big.Int).Sub(pow2(47), big.NewInt(1)))

	return []SeedCall{boundFromInts(base, top)}
}

func (c Boolean) Validate(random *lcg.Random) bool {
	want := c.V == 1

	return NewJavaRandom(random).NextBoolean() == want
}

// Int observes a java.util.Random.nextInt() call constrained to
// [Min, Max] (full int32 range, no modulus).
type Int struct {
	Min, Max int32
}

// NewInt validates min <= max.
func NewInt(min, max int32) (Int, error) {
	if min > max {
		return Int{}, ErrInvalidRange
	}

	return Int{Min: min, Max: max}, nil
}

func (c Int) Skips() int { return 1 }

// ToSeed: s ∈ [min·2¹⁶, max·2¹⁶ + 2¹⁶−1].
func (c Int) ToSeed() []SeedCall {
	lo := new(big.Int).Mul(big.NewInt(int64(c.Min)), pow2(16))
	hi := new(big.Int).Add(new(big.Int).Mul(big.NewInt(int64(c.Max)), pow2(16)), new(big.Int).Sub(pow2(16), big.NewInt(1)))

	return []SeedCall{boundFromInts(lo, hi)}
}

func (c Int) Validate(random *lcg.Random) bool {
	v := NewJavaRandom(random).NextInt()

	return v >= c.Min && v <= c.Max
}

// IntRangePow2 observes a java.util.Random.nextInt(bound) call whose
// bound R is a power of two, constrained to [Min, Max].
type IntRangePow2 struct {
	R        int32
	Min, Max int32
}

// NewIntRangePow2 validates r is a positive power of two and min <= max.
func NewIntRangePow2(r, min, max int32) (IntRangePow2, error) {
	if r <= 0 || r&(-r) != r {
		return IntRangePow2{}, ErrNotPowerOfTwo
	}
	if min > max {
		return IntRangePow2{}, ErrInvalidRange
	}

	return IntRangePow2{R: r, Min: min, Max: max}, nil
}

func (c IntRangePow2) Skips() int { return 1 }

// ToSeed: s ∈ [⌊(min·2³¹)/r⌋·2¹⁷, (⌊((max·2³¹)+2³¹−1)/r⌋)·2¹⁷ + 2¹⁷−1].
func (c IntRangePow2) ToSeed() []SeedCall {
	r := big.NewInt(int64(c.R))
	loNum := new(big.Int).Mul(big.NewInt(int64(c.Min)), pow2(31))
	loQ := floorDivBig(loNum, r)
	lo := new(big.Int).Mul(loQ, pow2(17))

	hiNum := new(big.Int).Add(new(big.Int).Mul(big.NewInt(int64(c.Max)), pow2(31)), new(big.Int).Sub(pow2(31), big.NewInt(1)))
	hiQ := floorDivBig(hiNum, r)
	hi := new(big.Int).Add(new(big.Int).Mul(hiQ, pow2(17)), new(big.Int).Sub(pow2(17), big.NewInt(1)))

	return []SeedCall{boundFromInts(lo, hi)}
}

func (c IntRangePow2) Validate(random *lcg.Random) bool {
	jr := NewJavaRandom(random)
	s31 := int64(jr.next(31))
	v := int32((int64(c.R) * s31) >> 31)

	return v >= c.Min && v <= c.Max
}

// Float observes a java.util.Random.nextFloat() call: s/2²⁴ ∈
// [Min, Max], with optional exclusive endpoints.
type Float struct {
	Min, Max                     float64
	MinExclusive, MaxExclusive bool
}

// NewFloat validates min <= max.
func NewFloat(min, max float64, minExclusive, maxExclusive bool) (Float, error) {
	if min > max {
		return Float{}, ErrInvalidRange
	}

	return Float{Min: min, Max: max, MinExclusive: minExclusive, MaxExclusive: maxExclusive}, nil
}

func (c Float) Skips() int { return 1 }

// ToSeed: s ∈ [⌊min·2²⁴⌋·2²⁴, ⌊max·2²⁴⌋·2²⁴ + 2²⁴−1]. Exclusive bounds
// step to the next representable min/max (§6) before scaling.
func (c Float) ToSeed() []SeedCall {
	min, max := c.Min, c.Max
	step := 1.0 / float64(int64(1)<<24)
	if c.MinExclusive {
		min += step
	}
	if c.MaxExclusive {
		max -= step
	}

	scale := pow2(24)
	loScaled := floorBig(min * float64(int64(1)<<24))
	hiScaled := floorBig(max * float64(int64(1)<<24))

	lo := new(big.Int).Mul(loScaled, scale)
	hi := new(big.Int).Add(new(big.Int).Mul(hiScaled, scale), new(big.Int).Sub(scale, big.NewInt(1)))

	return []SeedCall{boundFromInts(lo, hi)}
}

func (c Float) Validate(random *lcg.Random) bool {
	v := float64(NewJavaRandom(random).NextFloat())
	if c.MinExclusive && v <= c.Min {
		return false
	}
	if !c.MinExclusive && v < c.Min {
		return false
	}
	if c.MaxExclusive && v >= c.Max {
		return false
	}
	if !c.MaxExclusive && v > c.Max {
		return false
	}

	return true
}

// floorBig returns ⌊f⌋ as a *big.Int for an f known to fit comfortably
// in a float64's exact-integer range (every caller here scales by at
// most 2^53).
func floorBig(f float64) *big.Int {
	i := int64(f)
	if f < float64(i) {
		i--
	}

	return big.NewInt(i)
}

// Long observes a java.util.Random.nextLong() call, constrained to
// [Min, Max].
type Long struct {
	Min, Max int64
}

// NewLong validates min <= max.
func NewLong(min, max int64) (Long, error) {
	if min > max {
		return Long{}, ErrInvalidRange
	}

	return Long{Min: min, Max: max}, nil
}

func (c Long) Skips() int { return 2 }

// ToSeed constrains the first (high word) update always; the second
// (low word) update is included only when Min and Max share the same
// first word, per §6.
func (c Long) ToSeed() []SeedCall {
	// nextLong adds the second word sign-extended, so the first word is
	// the upper 32 bits of the result plus one whenever bit 31 is set.
	first := func(v int64) int64 { return (v >> 32) + ((v >> 31) & 1) }
	loFirst, hiFirst := first(c.Min), first(c.Max)
	if hiFirst > math.MaxInt32 {
		// For results this close to MaxInt64 the first word wraps past
		// MaxInt32; fall back to the full int32 range for it.
		loFirst, hiFirst = math.MinInt32, math.MaxInt32
	}
	hiMin, hiMax := int32(loFirst), int32(hiFirst)

	hiCall, _ := NewInt(hiMin, hiMax)
	calls := hiCall.ToSeed()

	if hiMin == hiMax {
		loMin := int32(uint32(c.Min))
		loMax := int32(uint32(c.Max))
		loCall, _ := NewInt(loMin, loMax)
		calls = append(calls, loCall.ToSeed()...)
	}

	return calls
}

func (c Long) Validate(random *lcg.Random) bool {
	v := NewJavaRandom(random).NextLong()

	return v >= c.Min && v <= c.Max
}

// Double observes a java.util.Random.nextDouble() call, constrained to
// [Min, Max], with optional exclusive endpoints.
type Double struct {
	Min, Max                   float64
	MinExclusive, MaxExclusive bool
}

// NewDouble validates min <= max.
func NewDouble(min, max float64, minExclusive, maxExclusive bool) (Double, error) {
	if min > max {
		return Double{}, ErrInvalidRange
	}

	return Double{Min: min, Max: max, MinExclusive: minExclusive, MaxExclusive: maxExclusive}, nil
}

func (c Double) Skips() int { return 2 }

// ToSeed constrains the first (hi26) update always; the second (lo27)
// update is included only when Min and Max scale to the same hi26, per
// §6.
func (c Double) ToSeed() []SeedCall {
	const scale53 = float64(int64(1) << 53)
	step := 1.0 / scale53
	min, max := c.Min, c.Max
	if c.MinExclusive {
		min += step
	}
	if c.MaxExclusive {
		max -= step
	}

	minScaled := floorBig(min * scale53)
	maxScaled := floorBig(max * scale53)

	hi26Min := new(big.Int).Rsh(minScaled, 27)
	hi26Max := new(big.Int).Rsh(maxScaled, 27)

	hiLo := new(big.Int).Mul(hi26Min, pow2(22))
	hiHi := new(big.Int).Add(new(big.Int).Mul(hi26Max, pow2(22)), new(big.Int).Sub(pow2(22), big.NewInt(1)))
	calls := []SeedCall{boundFromInts(hiLo, hiHi)}

	if hi26Min.Cmp(hi26Max) == 0 {
		mask27 := new(big.Int).Sub(pow2(27), big.NewInt(1))
		lo27Min := new(big.Int).And(minScaled, mask27)
		lo27Max := new(big.Int).And(maxScaled, mask27)

		loLo := new(big.Int).Mul(lo27Min, pow2(21))
		loHi := new(big.Int).Add(new(big.Int).Mul(lo27Max, pow2(21)), new(big.Int).Sub(pow2(21), big.NewInt(1)))
		calls = append(calls, boundFromInts(loLo, loHi))
	}

	return calls
}

func (c Double) Validate(random *lcg.Random) bool {
	v := NewJavaRandom(random).NextDouble()
	if c.MinExclusive && v <= c.Min {
		return false
	}
	if !c.MinExclusive && v < c.Min {
		return false
	}
	if c.MaxExclusive && v >= c.Max {
		return false
	}
	if !c.MaxExclusive && v > c.Max {
		return false
	}

	return true
}
