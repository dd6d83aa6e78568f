package linalg

import "github.com/katalvlaran/seedlattice/rational"

// Mul returns a*b. Requires a.Width() == b.Height(); the result has
// width b.Width() and height a.Height(), with element (x, y) equal to
// the dot product of a's row y and b's column x (§4.2).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.Width() != b.Height() {
		return nil, ErrDimensionMismatch
	}
	out, err := NewMatrix(b.Width(), a.Height())
	if err != nil {
		return nil, err
	}
	for x := 0; x < b.Width(); x++ {
		col := b.Column(x)
		for y := 0; y < a.Height(); y++ {
			row := a.Row(y)
			d, err := row.Dot(col)
			if err != nil {
				return nil, err
			}
			out.Set(x, y, d)
		}
	}

	return out, nil
}

// MulVector returns a*v, treating v as a column vector. Requires
// a.Width() == v.Size().
func MulVector(a *Matrix, v Vector) (Vector, error) {
	if a.Width() != v.Size() {
		return Vector{}, ErrDimensionMismatch
	}
	out, err := NewVector(a.Height())
	if err != nil {
		return Vector{}, err
	}
	for y := 0; y < a.Height(); y++ {
		d, err := a.Row(y).Dot(v)
		if err != nil {
			return Vector{}, err
		}
		out.Set(y, d)
	}

	return out, nil
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) (*Matrix, error) {
	out, err := NewMatrix(m.Height(), m.Width())
	if err != nil {
		return nil, err
	}
	for c := 0; c < m.Width(); c++ {
		for r := 0; r < m.Height(); r++ {
			out.Set(r, c, m.Get(c, r))
		}
	}

	return out, nil
}

// Determinant computes det(m) by cofactor expansion along column 0,
// alternating signs. The empty matrix (width 0) is defined to have
// determinant 1 (Open Question (b) — the empty-product convention).
// Acceptable because every call site in this module uses modest
// dimension (the lattice/LP sizes bounded by the transcript length).
func Determinant(m *Matrix) (rational.Rational, error) {
	if m.Width() != m.Height() {
		return rational.Rational{}, ErrNotSquare
	}
	n := m.Width()
	if n == 0 {
		return rational.One, nil
	}
	if n == 1 {
		return m.Get(0, 0), nil
	}

	sum := rational.Zero
	sign := rational.One
	for row := 0; row < n; row++ {
		entry := m.Get(0, row)
		if entry.IsZero() {
			sign = sign.Neg()
			continue
		}
		minor, err := NewMatrix(n-1, n-1)
		if err != nil {
			return rational.Rational{}, err
		}
		for c := 1; c < n; c++ {
			dr := 0
			for r := 0; r < n; r++ {
				if r == row {
					continue
				}
				minor.Set(c-1, dr, m.Get(c, r))
				dr++
			}
		}
		sub, err := Determinant(minor)
		if err != nil {
			return rational.Rational{}, err
		}
		sum = sum.Add(sign.Mul(entry).Mul(sub))
		sign = sign.Neg()
	}

	return sum, nil
}

// Inverse computes m^-1 by Gauss-Jordan elimination on the augmented
// matrix [m | I] (§4.2). Returns ErrNotSquare if m is not square, or
// ErrSingular if some column has no nonzero pivot during reduction.
func Inverse(m *Matrix) (*Matrix, error) {
	if m.Width() != m.Height() {
		return nil, ErrNotSquare
	}
	n := m.Width()
	identity, err := Identity(n)
	if err != nil {
		return nil, err
	}
	main := m.Clone()
	aug := NewAugmented(main, identity)
	pivots := Reduce(aug, main.Width())
	for _, p := range pivots {
		if p < 0 {
			return nil, ErrSingular
		}
	}

	return identity, nil
}
