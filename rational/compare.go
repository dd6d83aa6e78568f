package rational

import "math/big"

// Cmp returns -1, 0, or +1 according to whether r < o, r == o, or r > o.
func (r Rational) Cmp(o Rational) int {
	// p/q vs p'/q' with q, q' > 0 <=> p*q' vs p'*q.
	lhs := new(big.Int).Mul(r.p, o.q)
	rhs := new(big.Int).Mul(o.p, r.q)

	return lhs.Cmp(rhs)
}

// Equal reports whether r and o denote the same rational value.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// Max returns the larger of r and o.
func Max(r, o Rational) Rational {
	if r.Cmp(o) >= 0 {
		return r
	}

	return o
}

// Min returns the smaller of r and o.
func Min(r, o Rational) Rational {
	if r.Cmp(o) <= 0 {
		return r
	}

	return o
}
