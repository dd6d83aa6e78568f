package linalg

import "github.com/katalvlaran/seedlattice/rational"

// AugmentedMatrix couples one main matrix with zero or more "other"
// matrices of equal height (§3). Row operations (swap, scale,
// add-multiple) broadcast across all matrices in lockstep, so a pivot
// step applied to solve the main matrix is mirrored onto the others —
// used by Inverse ([m | I]).
//
// The logical column-index range spans the main matrix's columns first,
// then each "other" matrix's columns in order.
type AugmentedMatrix struct {
	Main   *Matrix
	Others []*Matrix
}

// NewAugmented couples main with the given other matrices. Panics if any
// other matrix's height differs from main's — this is a programmer
// error in how the augmented system was assembled, never a
// user-triggered condition.
func NewAugmented(main *Matrix, others ...*Matrix) *AugmentedMatrix {
	for _, o := range others {
		if o.Height() != main.Height() {
			panic(ErrDimensionMismatch)
		}
	}

	return &AugmentedMatrix{Main: main, Others: others}
}

// Height returns the shared row count of every coupled matrix.
func (a *AugmentedMatrix) Height() int { return a.Main.Height() }

// at resolves a logical column index to the matrix holding it and the
// local column index within that matrix.
func (a *AugmentedMatrix) at(col int) (*Matrix, int) {
	if col < a.Main.Width() {
		return a.Main, col
	}
	col -= a.Main.Width()
	for _, o := range a.Others {
		if col < o.Width() {
			return o, col
		}
		col -= o.Width()
	}
	panic(ErrIndexOutOfRange)
}

// Get returns the element at logical column col, row.
func (a *AugmentedMatrix) Get(col, row int) rational.Rational {
	m, c := a.at(col)

	return m.Get(c, row)
}

// SwapRows exchanges rows r1 and r2 across every coupled matrix.
func (a *AugmentedMatrix) SwapRows(r1, r2 int) {
	matrices := append([]*Matrix{a.Main}, a.Others...)
	for _, m := range matrices {
		row1, row2 := m.Row(r1), m.Row(r2)
		_ = SwapVectors(row1, row2)
	}
}

// ScaleRow multiplies row r by s across every coupled matrix.
func (a *AugmentedMatrix) ScaleRow(r int, s rational.Rational) {
	matrices := append([]*Matrix{a.Main}, a.Others...)
	for _, m := range matrices {
		m.Row(r).ScaleInPlace(s)
	}
}

// AddScaledRow adds s times row src into row dst, across every coupled
// matrix.
func (a *AugmentedMatrix) AddScaledRow(dst, src int, s rational.Rational) {
	matrices := append([]*Matrix{a.Main}, a.Others...)
	for _, m := range matrices {
		_ = m.Row(dst).SubScaledInPlace(s.Neg(), m.Row(src))
	}
}
