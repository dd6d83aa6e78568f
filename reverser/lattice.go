package reverser

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/katalvlaran/seedlattice/lll"
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
	"github.com/katalvlaran/seedlattice/rngcall"
	"github.com/katalvlaran/seedlattice/simplex"
)

// flatCall is one lattice-contributing seed-call at its absolute update
// index (§4.8 step 1).
type flatCall struct {
	index int
	seed  rngcall.SeedCall
}

// flatten keeps only non-filter entries and expands each into its
// ToSeed() seed-calls, one per offset within the entry's expansion.
func flatten(t *rngcall.Transcript) []flatCall {
	var out []flatCall
	for _, e := range t.NonFilterEntries() {
		for offset, sc := range e.Call.ToSeed() {
			out = append(out, flatCall{index: e.Index + offset, seed: sc})
		}
	}

	return out
}

// lattice is the fully-built, reduced Hidden-Number-Problem lattice plus
// the bounding polytope and row ordering the enumerator needs.
type lattice struct {
	b        *linalg.Matrix // n x n reduced basis
	o        linalg.Vector  // size n, deterministic additive term per call
	bInv     *linalg.Matrix // b's inverse, rows permuted narrowest-first
	lp       *simplex.LinearProgram
	order    []int // order[newRow] = row index in the pre-sort b^-1
	firstIdx int   // absolute index of calls[0], a.k.a. "first_entry_index"
}

// buildLattice performs §4.8 steps 2-6: construct the (n+1)-generator
// basis and offset, translate and rescale, LLL-reduce, build the box
// polytope, then order B^-1's rows by ascending polytope width.
func buildLattice(l lcg.LCG, calls []flatCall) (*lattice, error) {
	n := len(calls)
	first := calls[0].index

	b, err := linalg.NewMatrix(n+1, n)
	if err != nil {
		return nil, err
	}
	o, err := linalg.NewVector(n)
	if err != nil {
		return nil, err
	}
	minP, err := linalg.NewVector(n)
	if err != nil {
		return nil, err
	}
	maxP, err := linalg.NewVector(n)
	if err != nil {
		return nil, err
	}

	for k, c := range calls {
		gap := int64(c.index - first)
		step, err := l.OfStep(gap)
		if err != nil {
			return nil, err
		}

		b.Set(0, k, rational.NewBigInt(step.A))
		b.Set(k+1, k, rational.NewBigInt(new(big.Int).Neg(l.M)))

		ok := step.Next(big.NewInt(0))
		o.Set(k, rational.NewBigInt(ok))

		minP.Set(k, c.seed.Min.Sub(o.Get(k)))
		maxP.Set(k, c.seed.Max.Sub(o.Get(k)))
	}

	bFinal, err := rescaleAndReduce(b, minP, maxP, n)
	if err != nil {
		return nil, err
	}

	identity, err := linalg.Identity(n)
	if err != nil {
		return nil, err
	}
	builder := simplex.NewBuilder()
	if err := builder.AddBoundedBasis(minP, identity, maxP); err != nil {
		return nil, err
	}
	lp, err := builder.Build()
	if err != nil {
		return nil, err
	}

	bInv, err := linalg.Inverse(bFinal)
	if err != nil {
		return nil, err
	}

	sortedInv, order, err := orderRowsByWidth(bInv, lp, n)
	if err != nil {
		return nil, err
	}

	return &lattice{b: bFinal, o: o, bInv: sortedInv, lp: lp, order: order, firstIdx: first}, nil
}

// rescaleAndReduce implements §4.8 step 4: per-axis-normalize B via the
// lcm-of-side-lengths diagonal scaling, LLL-reduce, then undo the
// scaling, leaving a genuine n x n basis (the redundant z-direction
// generator strips out during reduction).
func rescaleAndReduce(b *linalg.Matrix, minP, maxP linalg.Vector, n int) (*linalg.Matrix, error) {
	lengths := make([]*big.Int, n)
	for k := 0; k < n; k++ {
		length := maxP.Get(k).Sub(minP.Get(k)).Add(rational.One)
		lengths[k] = length.Num() // side lengths are always integral
	}

	lcmAll := lengths[0]
	for _, ln := range lengths[1:] {
		lcmAll = lcm(lcmAll, ln)
	}

	d, err := linalg.NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	dInv, err := linalg.NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		scale := new(big.Int).Div(lcmAll, lengths[k])
		d.Set(k, k, rational.NewBigInt(scale))
		dInvEntry, err := rational.NewBigInt(scale).Inv()
		if err != nil {
			return nil, err
		}
		dInv.Set(k, k, dInvEntry)
	}

	db, err := linalg.Mul(d, b)
	if err != nil {
		return nil, err
	}
	reduced, err := lll.Reduce(db)
	if err != nil {
		return nil, err
	}
	if reduced.Width() != n {
		return nil, ErrDegenerateLattice
	}

	return linalg.Mul(dInv, reduced)
}

// orderRowsByWidth computes, for each row of bInv, the width of its
// gradient over lp (§4.8 step 6), then returns bInv with rows permuted
// ascending by that width, plus the permutation itself (order[newRow] =
// original row index).
func orderRowsByWidth(bInv *linalg.Matrix, lp *simplex.LinearProgram, n int) (*linalg.Matrix, []int, error) {
	widths := make([]rational.Rational, n)
	for r := 0; r < n; r++ {
		g := bInv.Row(r)
		_, maxVal, err := lp.Maximize(g)
		if err != nil {
			return nil, nil, err
		}
		_, minVal, err := lp.Minimize(g)
		if err != nil {
			return nil, nil, err
		}
		widths[r] = maxVal.Sub(minVal)
	}

	order := make([]int, n)
	for r := range order {
		order[r] = r
	}
	sort.SliceStable(order, func(i, j int) bool {
		return widths[order[i]].Less(widths[order[j]])
	})

	sorted, err := linalg.NewMatrix(n, n)
	if err != nil {
		return nil, nil, err
	}
	for newRow, oldRow := range order {
		for c := 0; c < n; c++ {
			sorted.Set(c, newRow, bInv.Get(c, oldRow))
		}
	}

	return sorted, order, nil
}

// lcm returns the least common multiple of two positive big.Ints.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	t := new(big.Int).Div(a, g)

	return t.Mul(t, b)
}
