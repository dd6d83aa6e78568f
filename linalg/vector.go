package linalg

import "github.com/katalvlaran/seedlattice/rational"

// Vector is a fixed-size ordered sequence of rationals, backed by a
// shared storage slice, a stride, and an offset. Index i maps to
// storage[offset + i*stride] (§3). A Vector obtained via NewVector owns
// its storage outright (stride 1, offset 0); a Vector obtained via
// Matrix.Column/Row/Diagonal is a view sharing the matrix's storage.
type Vector struct {
	storage []rational.Rational
	offset  int
	stride  int
	size    int
}

// NewVector allocates an owned, zero-filled vector of the given size.
// Returns ErrInvalidDimensions if size < 0.
func NewVector(size int) (Vector, error) {
	if size < 0 {
		return Vector{}, ErrInvalidDimensions
	}
	storage := make([]rational.Rational, size)
	for i := range storage {
		storage[i] = rational.Zero
	}

	return Vector{storage: storage, offset: 0, stride: 1, size: size}, nil
}

// VectorFromSlice constructs an owned vector copying the given values.
func VectorFromSlice(values []rational.Rational) Vector {
	storage := make([]rational.Rational, len(values))
	copy(storage, values)

	return Vector{storage: storage, offset: 0, stride: 1, size: len(values)}
}

// Size returns the number of elements in v.
func (v Vector) Size() int { return v.size }

func (v Vector) index(i int) int { return v.offset + i*v.stride }

// Get returns the element at index i. Panics if i is out of range — this
// is a programmer error (the hot linear-algebra kernels index in tight
// loops with already-validated bounds); public call sites that accept
// unvalidated indices should check against Size first.
func (v Vector) Get(i int) rational.Rational {
	if i < 0 || i >= v.size {
		panic(ErrIndexOutOfRange)
	}

	return v.storage[v.index(i)]
}

// Set writes x at index i, visible through every other view sharing this
// vector's storage. Panics if i is out of range.
func (v Vector) Set(i int, x rational.Rational) {
	if i < 0 || i >= v.size {
		panic(ErrIndexOutOfRange)
	}
	v.storage[v.index(i)] = x
}

// Clone returns a contiguous, independently-owned copy of v.
func (v Vector) Clone() Vector {
	storage := make([]rational.Rational, v.size)
	for i := 0; i < v.size; i++ {
		storage[i] = v.Get(i)
	}

	return Vector{storage: storage, offset: 0, stride: 1, size: v.size}
}

// Slice returns the vector's elements as a plain slice (always a copy).
func (v Vector) Slice() []rational.Rational {
	out := make([]rational.Rational, v.size)
	for i := 0; i < v.size; i++ {
		out[i] = v.Get(i)
	}

	return out
}

// Dot returns the dot product of v and o. Returns ErrDimensionMismatch
// if their sizes differ.
func (v Vector) Dot(o Vector) (rational.Rational, error) {
	if v.size != o.size {
		return rational.Rational{}, ErrDimensionMismatch
	}
	sum := rational.Zero
	for i := 0; i < v.size; i++ {
		sum = sum.Add(v.Get(i).Mul(o.Get(i)))
	}

	return sum, nil
}

// AddInPlace adds o into v element-wise, mutating v's storage through
// its view. Returns ErrDimensionMismatch if sizes differ.
func (v Vector) AddInPlace(o Vector) error {
	if v.size != o.size {
		return ErrDimensionMismatch
	}
	for i := 0; i < v.size; i++ {
		v.Set(i, v.Get(i).Add(o.Get(i)))
	}

	return nil
}

// SubScaledInPlace computes v[i] -= s*o[i] for every i, mutating v.
// Returns ErrDimensionMismatch if sizes differ.
func (v Vector) SubScaledInPlace(s rational.Rational, o Vector) error {
	if v.size != o.size {
		return ErrDimensionMismatch
	}
	for i := 0; i < v.size; i++ {
		v.Set(i, v.Get(i).Sub(s.Mul(o.Get(i))))
	}

	return nil
}

// ScaleInPlace multiplies every element of v by s, mutating v.
func (v Vector) ScaleInPlace(s rational.Rational) {
	for i := 0; i < v.size; i++ {
		v.Set(i, v.Get(i).Mul(s))
	}
}

// SwapVectors exchanges the contents pointed to by two views of equal
// size, element-wise. Used by row-swap pivoting.
func SwapVectors(a, b Vector) error {
	if a.size != b.size {
		return ErrDimensionMismatch
	}
	for i := 0; i < a.size; i++ {
		ai, bi := a.Get(i), b.Get(i)
		a.Set(i, bi)
		b.Set(i, ai)
	}

	return nil
}
