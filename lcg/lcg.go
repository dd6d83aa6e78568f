package lcg

import "math/big"

// LCG is an immutable linear congruential generator: next(s) = (A*s + B)
// mod M. PowerOfTwo is precomputed so Mod can mask instead of taking a
// remainder when M is a power of two (as Java's 2^48 modulus is).
type LCG struct {
	A, B, M    *big.Int
	PowerOfTwo bool
}

// New constructs an LCG, copying a, b, and m.
func New(a, b, m *big.Int) LCG {
	one := big.NewInt(1)
	powerOfTwo := new(big.Int).And(m, new(big.Int).Sub(m, one)).Sign() == 0

	return LCG{
		A:          new(big.Int).Set(a),
		B:          new(big.Int).Set(b),
		M:          new(big.Int).Set(m),
		PowerOfTwo: powerOfTwo,
	}
}

// JAVA is java.util.Random's LCG: multiplier 0x5DEECE66D, addend 0xB,
// modulus 2^48 (§6).
var JAVA = New(big.NewInt(0x5DEECE66D), big.NewInt(0xB), new(big.Int).Lsh(big.NewInt(1), 48))

// NumericalRecipes is the classic 32-bit LCG from Press et al.
var NumericalRecipes = New(big.NewInt(1664525), big.NewInt(1013904223), new(big.Int).Lsh(big.NewInt(1), 32))

// Borland is the 32-bit LCG used by Borland C/C++'s rand().
var Borland = New(big.NewInt(22695477), big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 32))

// Mod reduces x into [0, M), masking when M is a power of two.
func (l LCG) Mod(x *big.Int) *big.Int {
	if l.PowerOfTwo {
		mask := new(big.Int).Sub(l.M, big.NewInt(1))

		return new(big.Int).And(x, mask)
	}

	return new(big.Int).Mod(x, l.M)
}

// Next returns (A*s + B) mod M.
func (l LCG) Next(s *big.Int) *big.Int {
	x := new(big.Int).Add(new(big.Int).Mul(l.A, s), l.B)

	return l.Mod(x)
}

// Scramble returns mod(s XOR A), the involutive transform Java's
// java.util.Random uses to derive its internal seed from a user-supplied
// one: Scramble(Scramble(s)) == s for every s.
func (l LCG) Scramble(s *big.Int) *big.Int {
	return l.Mod(new(big.Int).Xor(s, l.A))
}

// inverse returns the LCG whose Next undoes l's Next: a^-1 mod m and
// -a^-1*b mod m. Returns ErrUnsupportedStep if A has no inverse mod M.
func (l LCG) inverse() (LCG, error) {
	aInv := new(big.Int).ModInverse(l.A, l.M)
	if aInv == nil {
		return LCG{}, ErrUnsupportedStep
	}
	b := l.Mod(new(big.Int).Neg(new(big.Int).Mul(aInv, l.B)))

	return LCG{A: aInv, B: b, M: new(big.Int).Set(l.M), PowerOfTwo: l.PowerOfTwo}, nil
}

// OfStep returns the LCG giving the k-th successor of Next in one
// application: ofStep(k).Next(s) == k applications of Next to s. Uses
// square-and-accumulate in the (a, b) semigroup, O(log|k|)
// multiplications. k == 0 returns the identity LCG (a=1, b=0). Negative
// k is admissible iff A is invertible modulo M; otherwise returns
// ErrUnsupportedStep.
func (l LCG) OfStep(k int64) (LCG, error) {
	if k == 0 {
		return LCG{A: big.NewInt(1), B: big.NewInt(0), M: new(big.Int).Set(l.M), PowerOfTwo: l.PowerOfTwo}, nil
	}

	base := l
	magnitude := k
	if k < 0 {
		inv, err := l.inverse()
		if err != nil {
			return LCG{}, err
		}
		base = inv
		magnitude = -k
	}

	a, b := stepCompose(base.A, base.B, l.M, uint64(magnitude))

	return LCG{A: a, B: b, M: new(big.Int).Set(l.M), PowerOfTwo: l.PowerOfTwo}, nil
}

// stepCompose computes (a^k mod m, b*(a^k-1)/(a-1) mod m) without
// division, via square-and-accumulate in the (a, b) semigroup: base
// starts at (a, b), accumulator at (1, 0); each bit of k that is set
// folds the current base into the accumulator, then the base is squared
// (§4.6).
func stepCompose(a, b, m *big.Int, k uint64) (*big.Int, *big.Int) {
	accA := big.NewInt(1)
	accB := big.NewInt(0)
	baseA := new(big.Int).Mod(a, m)
	baseB := new(big.Int).Mod(b, m)

	for k > 0 {
		if k&1 == 1 {
			accA, accB = new(big.Int).Mod(new(big.Int).Mul(accA, baseA), m),
				new(big.Int).Mod(new(big.Int).Add(new(big.Int).Mul(accB, baseA), baseB), m)
		}
		nextA := new(big.Int).Mod(new(big.Int).Mul(baseA, baseA), m)
		nextB := new(big.Int).Mod(new(big.Int).Mul(baseB, new(big.Int).Add(baseA, big.NewInt(1))), m)
		baseA, baseB = nextA, nextB
		k >>= 1
	}

	return accA, accB
}
