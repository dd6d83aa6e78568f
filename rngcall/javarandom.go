package rngcall

import (
	"math/big"

	"github.com/katalvlaran/seedlattice/lcg"
)

// JavaRandom replays java.util.Random's next-primitive family against
// an lcg.Random cursor, for use by Validate implementations (§6).
type JavaRandom struct {
	r *lcg.Random
}

// NewJavaRandom wraps an existing cursor. The cursor is not copied;
// advancing the returned JavaRandom advances r.
func NewJavaRandom(r *lcg.Random) JavaRandom {
	return JavaRandom{r: r}
}

// next advances the cursor one state and returns the top bits many high
// bits of the new 48-bit state, sign-extended to int32 the way
// java.util.Random.next(bits) does.
func (j JavaRandom) next(bits uint) int32 {
	s := j.r.NextSeed()
	shifted := new(big.Int).Rsh(s, 48-bits)
	v := uint32(shifted.Uint64())
	if bits == 32 {
		return int32(v)
	}

	return int32(v)
}

// NextBoolean consumes one update.
func (j JavaRandom) NextBoolean() bool { return j.next(1) != 0 }

// NextInt consumes one update, returning a full-range signed int32.
func (j JavaRandom) NextInt() int32 { return j.next(32) }

// NextIntBound consumes one or more updates (a rejection loop for a
// non-power-of-two bound), returning a value in [0, bound).
func (j JavaRandom) NextIntBound(bound int32) int32 {
	if bound&(-bound) == bound {
		return int32((int64(bound) * int64(j.next(31))) >> 31)
	}

	for {
		bits := j.next(31)
		val := bits % bound
		if bits-val+(bound-1) >= 0 {
			return val
		}
	}
}

// NextLong consumes two updates.
func (j JavaRandom) NextLong() int64 {
	hi := int64(j.next(32))
	lo := int64(j.next(32))

	return (hi << 32) + lo
}

// NextFloat consumes one update.
func (j JavaRandom) NextFloat() float32 {
	return float32(j.next(24)) / float32(int64(1)<<24)
}

// NextDouble consumes two updates.
func (j JavaRandom) NextDouble() float64 {
	hi := int64(j.next(26))
	lo := int64(j.next(27))

	return float64((hi<<27)+lo) / float64(int64(1)<<53)
}
