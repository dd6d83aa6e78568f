package simplex

import (
	"errors"
	"fmt"
)

// Sentinel errors for the simplex package.
var (
	// ErrDimensionMismatch indicates a constraint gradient's size did not
	// match the builder's established variable count.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrEmptyBuilder indicates Build was called before any constraint
	// established the variable count.
	ErrEmptyBuilder = errors.New("simplex: builder has no constraints")

	// ErrInfeasible indicates phase I found no point satisfying every
	// accumulated constraint (spec §7 InfeasibleConstraints).
	ErrInfeasible = errors.New("simplex: infeasible constraints")

	// ErrUnbounded indicates a ratio test found no exiting row, i.e. the
	// objective is unbounded on the feasible region. The reverser's
	// polytopes are always bounded boxes (addBoundedBasis on both ends
	// of every row), so this should never surface in practice.
	ErrUnbounded = errors.New("simplex: unbounded objective")
)

func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
