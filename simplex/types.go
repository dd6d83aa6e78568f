package simplex

import (
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
)

// Relation is the comparison a constraint's gradient·x makes against its
// bound.
type Relation int

const (
	// LE is gradient·x <= bound.
	LE Relation = iota
	// EQ is gradient·x == bound.
	EQ
	// GE is gradient·x >= bound.
	GE
)

// constraint is one linear inequality or equality accumulated by a
// Builder: gradient·x Relation bound.
type constraint struct {
	gradient linalg.Vector
	rel      Relation
	bound    rational.Rational
}

// LinearProgram is a feasible linear program: a fixed set of constraints
// over n real variables, with phase I already run so a basic feasible
// solution is on hand. Minimize, Maximize, and WithEquality never mutate
// the receiver.
type LinearProgram struct {
	n           int
	constraints []constraint
	tab         *tableau
}

// N returns the number of decision variables.
func (lp *LinearProgram) N() int { return lp.n }
