package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact p/q value, always held in lowest terms with a
// strictly positive denominator. The zero value is NOT a valid Rational
// (its denominator is nil); always construct via NewInt, NewBigInt, or
// New.
//
// Rational is a value type: every operation returns a Rational and never
// mutates its receiver's backing big.Int storage in place. Backing
// big.Ints may be shared between values (some operations return their
// receiver unchanged), but since none is mutated after construction,
// callers may freely copy a Rational by value.
type Rational struct {
	p *big.Int // numerator, any sign
	q *big.Int // denominator, > 0
}

// Zero is the additive identity 0/1.
var Zero = Rational{p: big.NewInt(0), q: big.NewInt(1)}

// One is the multiplicative identity 1/1.
var One = Rational{p: big.NewInt(1), q: big.NewInt(1)}

// New constructs num/den in lowest terms. Returns ErrZeroDenominator if
// den is zero. Does not mutate num or den.
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return normalize(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// MustNew is New but panics on a zero denominator. Reserved for
// constructing internal literals (e.g. package-level constants) where
// the denominator is known statically to be non-zero.
func MustNew(num, den *big.Int) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// NewInt constructs an integer n/1.
func NewInt(n int64) Rational {
	return Rational{p: big.NewInt(n), q: big.NewInt(1)}
}

// NewBigInt constructs an integer n/1, copying n.
func NewBigInt(n *big.Int) Rational {
	return Rational{p: new(big.Int).Set(n), q: big.NewInt(1)}
}

// NewFrac constructs num/den from int64 operands; den == 0 returns
// ErrZeroDenominator.
func NewFrac(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// normalize reduces p/q to lowest terms with q > 0, taking ownership of
// both arguments (callers must not reuse them afterward).
func normalize(p, q *big.Int) Rational {
	if p.Sign() == 0 {
		return Rational{p: big.NewInt(0), q: big.NewInt(1)}
	}
	if q.Sign() < 0 {
		p.Neg(p)
		q.Neg(q)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(p), q)
	if g.Cmp(big.NewInt(1)) != 0 {
		p.Quo(p, g)
		q.Quo(q, g)
	}

	return Rational{p: p, q: q}
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.p) }

// Den returns a copy of the denominator (always > 0).
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.q) }

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool { return r.q.Cmp(big.NewInt(1)) == 0 }

// IsZero reports whether r is the additive identity.
func (r Rational) IsZero() bool { return r.p.Sign() == 0 }

// String renders r as "p" when integral, else "p/q".
func (r Rational) String() string {
	if r.IsInt() {
		return r.p.String()
	}

	return fmt.Sprintf("%s/%s", r.p.String(), r.q.String())
}
