package rational

import "math/big"

var half = MustNew(big.NewInt(1), big.NewInt(2))

// Floor returns the greatest integer <= r, as an integral Rational.
//
// Per §4.1: if the denominator is 1, r is returned unchanged; otherwise
// integer division truncates toward zero, so a negative numerator needs
// one further decrement to reach the floor.
func (r Rational) Floor() Rational {
	if r.IsInt() {
		return r
	}

	t := new(big.Int).Quo(r.p, r.q) // truncates toward zero
	if r.p.Sign() < 0 {
		t.Sub(t, big.NewInt(1))
	}

	return NewBigInt(t)
}

// Ceil returns the least integer >= r, as an integral Rational. Defined
// symmetrically to Floor: a positive numerator needs one further
// increment past truncating division.
func (r Rational) Ceil() Rational {
	if r.IsInt() {
		return r
	}

	t := new(big.Int).Quo(r.p, r.q)
	if r.p.Sign() > 0 {
		t.Add(t, big.NewInt(1))
	}

	return NewBigInt(t)
}

// Round returns the nearest integer, computed as (x + 1/2).Floor: a tie
// at .5 rounds toward +∞ and a tie at -.5 rounds toward 0 (round half
// up, not symmetric). LLL's size-reduction step (§4.4) rounds with it.
func (r Rational) Round() Rational {
	return r.Add(half).Floor()
}

// Mod returns x - floor(x/m)*m, the rational remainder of r modulo m
// with the same sign convention as Floor (result lies in [0, m) for
// m > 0). Returns ErrZeroDenominator if m is zero.
func (r Rational) Mod(m Rational) (Rational, error) {
	q, err := r.Quo(m)
	if err != nil {
		return Rational{}, err
	}

	return r.Sub(q.Floor().Mul(m)), nil
}
