package rational

import "math/big"

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	// p/q + p'/q' = (p*q' + p'*q) / (q*q')
	p := new(big.Int).Mul(r.p, o.q)
	p.Add(p, new(big.Int).Mul(o.p, r.q))
	q := new(big.Int).Mul(r.q, o.q)

	return normalize(p, q)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.IsZero() {
		return r
	}

	return Rational{p: new(big.Int).Neg(r.p), q: new(big.Int).Set(r.q)}
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	p := new(big.Int).Mul(r.p, o.p)
	q := new(big.Int).Mul(r.q, o.q)

	return normalize(p, q)
}

// Inv returns 1/r. Returns ErrZeroDenominator if r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrZeroDenominator
	}

	return normalize(new(big.Int).Set(r.q), new(big.Int).Set(r.p)), nil
}

// Quo returns r / o. Returns ErrZeroDenominator if o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}

	return r.Mul(inv), nil
}

// Pow returns r raised to a non-negative or negative integer exponent n.
// Returns ErrZeroDenominator if n < 0 and r is zero.
func (r Rational) Pow(n int) (Rational, error) {
	if n == 0 {
		return One, nil
	}

	neg := n < 0
	e := n
	if neg {
		e = -n
	}

	base := r
	result := One
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}

	if neg {
		return result.Inv()
	}

	return result, nil
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.p.Sign() < 0 {
		return r.Neg()
	}

	return r
}

// Sgn returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sgn() int { return r.p.Sign() }
