package simplex

import (
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
)

// tableau holds the feasible constraint block established by phase I:
// the extended-variable coefficient matrix (free reals split into
// x = x+ - x-, one slack per inequality, one artificial per row that
// needed one to seed an initial basic feasible solution) together with
// the row basis phase I converged to. Every LinearProgram holds one,
// built once by Build/WithEquality and then re-optimized, without
// mutation, by every later Minimize/Maximize call.
type tableau struct {
	n        int // real (unsplit) variable count
	rows     int
	numExt   int // 2*n
	numSlack int
	numArt   int
	artCol   []int // the numArt artificial column indices, for exclusion in phase II
	rhsCol   int
	m        *linalg.Matrix // rows x (numExt+numSlack+numArt+1), feasible (phase I solved)
	basis    []int          // basis[r] = column index basic in row r
}

// newTableau compiles constraints into extended-variable standard form
// and runs phase I to find a basic feasible solution. Returns
// ErrInfeasible if phase I's optimum (minimized sum of artificials) is
// nonzero.
func newTableau(n int, constraints []constraint) (*tableau, error) {
	rows := len(constraints)
	numExt := 2 * n

	// Normalize every row to a non-negative bound, tracking the relation
	// each row ends up with after a possible sign flip.
	type normRow struct {
		grad linalg.Vector
		rel  Relation
		rhs  rational.Rational
	}
	normalized := make([]normRow, rows)
	for i, c := range constraints {
		rel, rhs := c.rel, c.bound
		grad := c.gradient
		if rhs.Sgn() < 0 {
			neg, _ := linalg.NewVector(n)
			for k := 0; k < n; k++ {
				neg.Set(k, grad.Get(k).Neg())
			}
			grad = neg
			rhs = rhs.Neg()
			switch rel {
			case LE:
				rel = GE
			case GE:
				rel = LE
			}
		}
		normalized[i] = normRow{grad: grad, rel: rel, rhs: rhs}
	}

	numSlack, numArt := 0, 0
	slackCol := make([]int, rows)
	artCol := make([]int, rows)
	for i, nr := range normalized {
		slackCol[i], artCol[i] = -1, -1
		switch nr.rel {
		case LE:
			slackCol[i] = numSlack
			numSlack++
		case GE:
			slackCol[i] = numSlack
			numSlack++
			artCol[i] = numArt
			numArt++
		case EQ:
			artCol[i] = numArt
			numArt++
		}
	}

	totalCols := numExt + numSlack + numArt + 1
	rhsCol := totalCols - 1
	slackBase := numExt
	artBase := numExt + numSlack

	if rows == 0 {
		return &tableau{n: n, rows: 0, numExt: numExt, numSlack: 0, numArt: 0, rhsCol: rhsCol, m: nil, basis: nil}, nil
	}

	mat, _ := linalg.NewMatrix(totalCols, rows)
	basis := make([]int, rows)
	artGlobal := make([]int, 0, numArt)
	for i, nr := range normalized {
		for k := 0; k < n; k++ {
			g := nr.grad.Get(k)
			mat.Set(2*k, i, g)
			mat.Set(2*k+1, i, g.Neg())
		}
		switch nr.rel {
		case LE:
			mat.Set(slackBase+slackCol[i], i, rational.One)
			basis[i] = slackBase + slackCol[i]
		case GE:
			mat.Set(slackBase+slackCol[i], i, rational.NewInt(-1))
			col := artBase + artCol[i]
			mat.Set(col, i, rational.One)
			basis[i] = col
			artGlobal = append(artGlobal, col)
		case EQ:
			col := artBase + artCol[i]
			mat.Set(col, i, rational.One)
			basis[i] = col
			artGlobal = append(artGlobal, col)
		}
		mat.Set(rhsCol, i, nr.rhs)
	}

	t := &tableau{
		n: n, rows: rows, numExt: numExt, numSlack: numSlack, numArt: numArt,
		artCol: artGlobal, rhsCol: rhsCol, m: mat, basis: basis,
	}

	if numArt == 0 {
		return t, nil
	}

	// Phase I: maximize -sum(artificials), i.e. drive every artificial
	// out of the basis (or to zero value).
	cost := make([]rational.Rational, totalCols)
	for c := range cost {
		cost[c] = rational.Zero
	}
	for _, c := range artGlobal {
		cost[c] = rational.NewInt(-1)
	}

	full, _ := linalg.NewMatrix(totalCols, rows+1)
	for c := 0; c < totalCols; c++ {
		for r := 0; r < rows; r++ {
			full.Set(c, r, mat.Get(c, r))
		}
	}
	objRow := rows
	costRow := buildReducedCostRow(full, objRow, cost, basis, func(col int) rational.Rational { return cost[col] })
	for c := 0; c < totalCols; c++ {
		full.Set(c, objRow, costRow.Get(c))
	}

	if err := simplexLoop(full, basis, objRow, func(col int) bool { return false }); err != nil {
		return nil, simplexErrorf("simplex.Build", err)
	}

	phase1Value := full.Get(rhsCol, objRow)
	if !phase1Value.IsZero() {
		return nil, simplexErrorf("simplex.Build", ErrInfeasible)
	}

	// Copy the feasible constraint rows (without the objective row) back
	// out, dropping nothing — artificial columns stay present but excluded
	// from entering consideration in every later phase II call.
	feasible, _ := linalg.NewMatrix(totalCols, rows)
	for c := 0; c < totalCols; c++ {
		for r := 0; r < rows; r++ {
			feasible.Set(c, r, full.Get(c, r))
		}
	}
	t.m = feasible
	t.basis = basis

	return t, nil
}

// buildReducedCostRow computes the initial reduced-cost row for a cost
// vector given the current basis: cost - sum_r basisCost(basis[r]) * row_r.
func buildReducedCostRow(mat *linalg.Matrix, objRow int, cost []rational.Rational, basis []int, basisCost func(col int) rational.Rational) linalg.Vector {
	row, _ := linalg.NewVector(mat.Width())
	for c := 0; c < mat.Width(); c++ {
		row.Set(c, cost[c])
	}
	for r := 0; r < objRow; r++ {
		bc := basisCost(basis[r])
		if bc.IsZero() {
			continue
		}
		_ = row.SubScaledInPlace(bc, mat.Row(r))
	}

	return row
}

// simplexLoop runs the primal simplex method to optimality (maximizing
// the objective row objRow holds), skipping any column for which
// excluded returns true as an entering candidate. Mutates mat and basis
// in place.
func simplexLoop(mat *linalg.Matrix, basis []int, objRow int, excluded func(col int) bool) error {
	rhsCol := mat.Width() - 1
	for {
		enter := -1
		var best rational.Rational
		for c := 0; c < rhsCol; c++ {
			if excluded(c) {
				continue
			}
			v := mat.Get(c, objRow)
			if v.Sgn() <= 0 {
				continue
			}
			if enter == -1 || v.Cmp(best) > 0 {
				enter, best = c, v
			}
		}
		if enter == -1 {
			return nil
		}

		exit := -1
		var bestRatio rational.Rational
		for r := 0; r < objRow; r++ {
			entry := mat.Get(enter, r)
			if entry.Sgn() <= 0 {
				continue
			}
			ratio, _ := mat.Get(rhsCol, r).Quo(entry)
			if exit == -1 || ratio.Cmp(bestRatio) < 0 || (ratio.Equal(bestRatio) && basis[r] < basis[exit]) {
				exit, bestRatio = r, ratio
			}
		}
		if exit == -1 {
			// Unbounded: the entering column can grow without driving any
			// basic variable to zero. The reverser's polytopes are always
			// bounded boxes, so this path is a defensive guard rather than
			// an expected outcome.
			return ErrUnbounded
		}

		pivot(mat, exit, enter)
		basis[exit] = enter
	}
}

// pivot normalizes row pivotRow so its pivotCol entry is 1, then
// eliminates pivotCol from every other row (including the objective
// row), the standard Gauss-Jordan tableau pivot.
func pivot(mat *linalg.Matrix, pivotRow, pivotCol int) {
	prow := mat.Row(pivotRow)
	pv := prow.Get(pivotCol)
	inv, _ := pv.Inv()
	prow.ScaleInPlace(inv)

	for r := 0; r < mat.Height(); r++ {
		if r == pivotRow {
			continue
		}
		factor := mat.Row(r).Get(pivotCol)
		if factor.IsZero() {
			continue
		}
		_ = mat.Row(r).SubScaledInPlace(factor, prow)
	}
}

// optimize extremizes gradient (over the original n real variables) on
// t's feasible region, without mutating t. maximize selects the
// direction; for a minimum the gradient is negated while pivoting, and
// the returned value is the vertex dotted with the original gradient.
func (t *tableau) optimize(gradient linalg.Vector, maximize bool) (linalg.Vector, rational.Rational, error) {
	if t.rows == 0 {
		zero, _ := linalg.NewVector(t.n)
		return zero, rational.Zero, nil
	}

	g := gradient
	if !maximize {
		neg, _ := linalg.NewVector(t.n)
		for i := 0; i < t.n; i++ {
			neg.Set(i, gradient.Get(i).Neg())
		}
		g = neg
	}

	totalCols := t.m.Width()
	cost := make([]rational.Rational, totalCols)
	for c := range cost {
		cost[c] = rational.Zero
	}
	for k := 0; k < t.n; k++ {
		cost[2*k] = g.Get(k)
		cost[2*k+1] = g.Get(k).Neg()
	}

	full, _ := linalg.NewMatrix(totalCols, t.rows+1)
	for c := 0; c < totalCols; c++ {
		for r := 0; r < t.rows; r++ {
			full.Set(c, r, t.m.Get(c, r))
		}
	}
	basis := make([]int, t.rows)
	copy(basis, t.basis)
	objRow := t.rows

	basisCost := func(col int) rational.Rational {
		if col < t.numExt {
			return cost[col]
		}
		return rational.Zero
	}
	costRow := buildReducedCostRow(full, objRow, cost, basis, basisCost)
	for c := 0; c < totalCols; c++ {
		full.Set(c, objRow, costRow.Get(c))
	}

	isArt := make(map[int]bool, len(t.artCol))
	for _, c := range t.artCol {
		isArt[c] = true
	}
	if err := simplexLoop(full, basis, objRow, func(col int) bool { return isArt[col] }); err != nil {
		return linalg.Vector{}, rational.Zero, simplexErrorf("simplex.optimize", err)
	}

	vertex, _ := linalg.NewVector(t.n)
	for k := 0; k < t.n; k++ {
		plus, minus := rational.Zero, rational.Zero
		for r := 0; r < t.rows; r++ {
			if basis[r] == 2*k {
				plus = full.Get(t.rhsCol, r)
			}
			if basis[r] == 2*k+1 {
				minus = full.Get(t.rhsCol, r)
			}
		}
		vertex.Set(k, plus.Sub(minus))
	}

	value, err := vertex.Dot(gradient)
	if err != nil {
		return linalg.Vector{}, rational.Zero, simplexErrorf("simplex.optimize", err)
	}

	return vertex, value, nil
}
