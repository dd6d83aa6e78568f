package simplex

import (
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
)

// Builder accumulates linear constraints over a fixed (but lazily
// established) number of real variables, for compilation into a
// LinearProgram via Build.
type Builder struct {
	n           int
	constraints []constraint
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{n: -1}
}

// Add accumulates gradient·x rel bound. The first call fixes the
// variable count; every later call must use a gradient of the same
// size, or Add returns ErrDimensionMismatch.
func (b *Builder) Add(gradient linalg.Vector, rel Relation, bound rational.Rational) error {
	if b.n < 0 {
		b.n = gradient.Size()
	} else if gradient.Size() != b.n {
		return simplexErrorf("simplex.Add", ErrDimensionMismatch)
	}
	b.constraints = append(b.constraints, constraint{gradient: gradient.Clone(), rel: rel, bound: bound})

	return nil
}

// AddBoundedBasis adds, for every row r of basis, the pair
//
//	(row r of basis)·x >= min.Get(r)
//	(row r of basis)·x <= max.Get(r)
//
// With basis = B this expresses min' <= B*x <= max' using B's rows as
// gradients. The reverser passes the identity, giving the box
// min' <= x <= max' directly on x (§4.8 step 5).
func (b *Builder) AddBoundedBasis(min linalg.Vector, basis *linalg.Matrix, max linalg.Vector) error {
	if min.Size() != basis.Height() || max.Size() != basis.Height() {
		return simplexErrorf("simplex.AddBoundedBasis", ErrDimensionMismatch)
	}
	for r := 0; r < basis.Height(); r++ {
		row := basis.Row(r)
		if err := b.Add(row, GE, min.Get(r)); err != nil {
			return err
		}
		if err := b.Add(row, LE, max.Get(r)); err != nil {
			return err
		}
	}

	return nil
}

// Build compiles the accumulated constraints into a LinearProgram,
// running phase I (minimizing the sum of artificial variables) to
// establish a basic feasible solution. Returns ErrInfeasible if no point
// satisfies every constraint, or ErrEmptyBuilder if no constraint was
// ever added.
func (b *Builder) Build() (*LinearProgram, error) {
	if b.n < 0 {
		return nil, simplexErrorf("simplex.Build", ErrEmptyBuilder)
	}

	return buildFromConstraints(b.n, b.constraints)
}

func buildFromConstraints(n int, constraints []constraint) (*LinearProgram, error) {
	t, err := newTableau(n, constraints)
	if err != nil {
		return nil, err
	}

	return &LinearProgram{n: n, constraints: constraints, tab: t}, nil
}

// WithEquality returns a new LinearProgram with one more equality
// constraint, gradient·x == bound, fixed on top of lp's existing
// constraints. lp itself is not mutated. Returns ErrInfeasible if the
// augmented constraint set has no feasible point.
func (lp *LinearProgram) WithEquality(gradient linalg.Vector, bound rational.Rational) (*LinearProgram, error) {
	if gradient.Size() != lp.n {
		return nil, simplexErrorf("simplex.WithEquality", ErrDimensionMismatch)
	}
	extended := make([]constraint, len(lp.constraints), len(lp.constraints)+1)
	copy(extended, lp.constraints)
	extended = append(extended, constraint{gradient: gradient.Clone(), rel: EQ, bound: bound})

	return buildFromConstraints(lp.n, extended)
}
