package linalg

import "github.com/katalvlaran/seedlattice/rational"

// Matrix is a column-major dense grid of width w and height h, backed by
// one storage slice of length w*h (§3). Element (col, row) lives at
// storage[col*h + row].
type Matrix struct {
	storage []rational.Rational
	w, h    int
}

// NewMatrix allocates a zero-filled w x h matrix. Returns
// ErrInvalidDimensions if w < 0 or h < 0.
func NewMatrix(w, h int) (*Matrix, error) {
	if w < 0 || h < 0 {
		return nil, ErrInvalidDimensions
	}
	storage := make([]rational.Rational, w*h)
	for i := range storage {
		storage[i] = rational.Zero
	}

	return &Matrix{storage: storage, w: w, h: h}, nil
}

// Identity returns the n x n identity matrix. Returns
// ErrInvalidDimensions if n < 0.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, rational.One)
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.w }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.h }

func (m *Matrix) index(col, row int) int { return col*m.h + row }

func (m *Matrix) inBounds(col, row int) bool {
	return col >= 0 && col < m.w && row >= 0 && row < m.h
}

// Get returns the element at (col, row). Panics if out of range.
func (m *Matrix) Get(col, row int) rational.Rational {
	if !m.inBounds(col, row) {
		panic(ErrIndexOutOfRange)
	}

	return m.storage[m.index(col, row)]
}

// Set writes x at (col, row). Panics if out of range.
func (m *Matrix) Set(col, row int, x rational.Rational) {
	if !m.inBounds(col, row) {
		panic(ErrIndexOutOfRange)
	}
	m.storage[m.index(col, row)] = x
}

// Column returns a view of column c: stride 1, offset c*h.
func (m *Matrix) Column(c int) Vector {
	if c < 0 || c >= m.w {
		panic(ErrIndexOutOfRange)
	}

	return Vector{storage: m.storage, offset: c * m.h, stride: 1, size: m.h}
}

// Row returns a view of row r: stride h, offset r.
func (m *Matrix) Row(r int) Vector {
	if r < 0 || r >= m.h {
		panic(ErrIndexOutOfRange)
	}

	return Vector{storage: m.storage, offset: r, stride: m.h, size: m.w}
}

// Diagonal returns a view of the main diagonal: stride h+1, offset 0.
// Its length is min(w, h).
func (m *Matrix) Diagonal() Vector {
	n := m.w
	if m.h < n {
		n = m.h
	}

	return Vector{storage: m.storage, offset: 0, stride: m.h + 1, size: n}
}

// Clone returns a deep, independently-storaged copy of m.
func (m *Matrix) Clone() *Matrix {
	storage := make([]rational.Rational, len(m.storage))
	copy(storage, m.storage)

	return &Matrix{storage: storage, w: m.w, h: m.h}
}

// SetColumn overwrites column c with v's values. Returns
// ErrDimensionMismatch if v.Size() != m.Height().
func (m *Matrix) SetColumn(c int, v Vector) error {
	if v.Size() != m.h {
		return ErrDimensionMismatch
	}
	col := m.Column(c)
	for i := 0; i < m.h; i++ {
		col.Set(i, v.Get(i))
	}

	return nil
}
