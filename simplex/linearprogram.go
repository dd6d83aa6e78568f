package simplex

import (
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
)

// Minimize returns the minimizing vertex and optimal value of
// gradient·x over lp's feasible region. lp is not mutated.
func (lp *LinearProgram) Minimize(gradient linalg.Vector) (linalg.Vector, rational.Rational, error) {
	if gradient.Size() != lp.n {
		return linalg.Vector{}, rational.Zero, simplexErrorf("simplex.Minimize", ErrDimensionMismatch)
	}

	return lp.tab.optimize(gradient, false)
}

// Maximize returns the maximizing vertex and optimal value of
// gradient·x over lp's feasible region. lp is not mutated.
func (lp *LinearProgram) Maximize(gradient linalg.Vector) (linalg.Vector, rational.Rational, error) {
	if gradient.Size() != lp.n {
		return linalg.Vector{}, rational.Zero, simplexErrorf("simplex.Maximize", ErrDimensionMismatch)
	}

	return lp.tab.optimize(gradient, true)
}
