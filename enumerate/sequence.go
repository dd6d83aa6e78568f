package enumerate

import (
	"math/big"

	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
	"github.com/katalvlaran/seedlattice/simplex"
)

// Sequence lazily enumerates integer lattice vectors whose image under B
// (via the LP carried inside each frame) lies in the target polytope.
// Next yields vectors one at a time, narrowest-dimension-first (§4.9);
// Split, called on a fresh Sequence before any descent past the root has
// happened, divides the remaining root-level work between two
// Sequences so a worker pool can share it.
type Sequence interface {
	// Next returns the next lattice vector and true, or a zero Vector and
	// false once the tree under this Sequence is exhausted.
	Next() (linalg.Vector, bool)

	// Split divides this Sequence's unexplored work into two halves,
	// returning a replacement for the receiver and a new sibling. Only
	// succeeds while the receiver is still positioned at its root frame
	// with no descent in progress; otherwise returns (nil, nil, false).
	Split() (Sequence, Sequence, bool)
}

// frame is one level of the DFS: the LP with every shallower coordinate
// fixed by equality, the partial vertex built so far, and the
// (lazily-computed) integer range this level still has left to try.
type frame struct {
	depth       int
	lp          *simplex.LinearProgram
	partial     linalg.Vector
	initialized bool
	kCur, kMax  *big.Int
}

type sequence struct {
	sortedBInv *linalg.Matrix
	order      []int
	n          int
	stack      []*frame
}

// New returns a Sequence over lp's feasible region, branching on
// sortedBInv's rows in order (row 0 first — the reverser sorts these by
// polytope width, narrowest first, before calling New). order[d] is the
// original (pre-sort) coordinate index that depth d's lattice coordinate
// belongs to in the vertex New yields.
func New(sortedBInv *linalg.Matrix, lp *simplex.LinearProgram, order []int) (Sequence, error) {
	n := lp.N()
	if sortedBInv.Width() != n || sortedBInv.Height() != n || len(order) != n {
		return nil, ErrDimensionMismatch
	}

	zero, err := linalg.NewVector(n)
	if err != nil {
		return nil, err
	}

	root := &frame{depth: 0, lp: lp, partial: zero}

	return &sequence{sortedBInv: sortedBInv, order: append([]int(nil), order...), n: n, stack: []*frame{root}}, nil
}

// bound computes [kMin, kMax] for f's depth by optimizing sortedBInv's
// corresponding row over f.lp, rounding in toward the feasible integers.
func (s *sequence) bound(f *frame) error {
	g := s.sortedBInv.Row(f.depth)

	_, minVal, err := f.lp.Minimize(g)
	if err != nil {
		return err
	}
	_, maxVal, err := f.lp.Maximize(g)
	if err != nil {
		return err
	}

	f.kCur = minVal.Ceil().Num()
	f.kMax = maxVal.Floor().Num()
	f.initialized = true

	return nil
}

// Next implements Sequence.
func (s *sequence) Next() (linalg.Vector, bool) {
	one := big.NewInt(1)

	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]

		if !top.initialized {
			if err := s.bound(top); err != nil {
				// Infeasible or degenerate gradient at this depth: no
				// integer in range, treat as an exhausted frame.
				s.stack = s.stack[:len(s.stack)-1]

				continue
			}
		}

		if top.kCur.Cmp(top.kMax) > 0 {
			s.stack = s.stack[:len(s.stack)-1]

			continue
		}

		k := new(big.Int).Set(top.kCur)
		top.kCur = new(big.Int).Add(top.kCur, one)

		v := top.partial.Clone()
		v.Set(s.order[top.depth], rational.NewBigInt(k))

		if top.depth == s.n-1 {
			return v, true
		}

		g := s.sortedBInv.Row(top.depth)
		childLP, err := top.lp.WithEquality(g, rational.NewBigInt(k))
		if err != nil {
			// This k is infeasible once combined with shallower fixings;
			// skip it and keep trying the rest of this frame's range.
			continue
		}

		s.stack = append(s.stack, &frame{depth: top.depth + 1, lp: childLP, partial: v})
	}

	return linalg.Vector{}, false
}

// Split implements Sequence.
func (s *sequence) Split() (Sequence, Sequence, bool) {
	if len(s.stack) != 1 {
		return nil, nil, false
	}

	root := s.stack[0]
	if !root.initialized {
		if err := s.bound(root); err != nil {
			return nil, nil, false
		}
	}

	lo, hi := root.kCur, root.kMax
	if lo.Cmp(hi) > 0 {
		return nil, nil, false
	}

	span := new(big.Int).Sub(hi, lo)
	if span.Sign() == 0 {
		// A single remaining value can't be split further.
		return nil, nil, false
	}
	mid := new(big.Int).Add(lo, new(big.Int).Rsh(new(big.Int).Add(span, big.NewInt(1)), 1))

	left := &sequence{
		sortedBInv: s.sortedBInv,
		order:      s.order,
		n:          s.n,
		stack: []*frame{{
			depth: root.depth, lp: root.lp, partial: root.partial,
			initialized: true, kCur: new(big.Int).Set(lo), kMax: new(big.Int).Sub(mid, big.NewInt(1)),
		}},
	}
	right := &sequence{
		sortedBInv: s.sortedBInv,
		order:      s.order,
		n:          s.n,
		stack: []*frame{{
			depth: root.depth, lp: root.lp, partial: root.partial,
			initialized: true, kCur: new(big.Int).Set(mid), kMax: new(big.Int).Set(hi),
		}},
	}

	return left, right, true
}
