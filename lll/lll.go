package lll

import (
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rational"
)

// gso holds a Gram-Schmidt orthogonalization of a basis: gstar is the
// orthogonal (non-integer) vector set, mu.Get(k, j) is μ[j,k] (the
// coefficient of b_k along g_j, j < k), and norms[i] = ‖g_i‖².
type gso struct {
	gstar *linalg.Matrix
	mu    *linalg.Matrix
	norms []rational.Rational
}

// computeGSO performs classical Gram-Schmidt orthogonalization of b's
// columns over the rationals.
func computeGSO(b *linalg.Matrix) gso {
	n := b.Width()
	gstar, _ := linalg.NewMatrix(n, b.Height())
	mu, _ := linalg.NewMatrix(n, n)
	norms := make([]rational.Rational, n)

	for k := 0; k < n; k++ {
		gk := b.Column(k).Clone()
		for j := 0; j < k; j++ {
			if norms[j].IsZero() {
				mu.Set(k, j, rational.Zero)
				continue
			}
			dot, _ := b.Column(k).Dot(gstar.Column(j))
			mjk, _ := dot.Quo(norms[j])
			mu.Set(k, j, mjk)
			_ = gk.SubScaledInPlace(mjk, gstar.Column(j))
		}
		_ = gstar.SetColumn(k, gk)
		nrm, _ := gk.Dot(gk)
		norms[k] = nrm
	}

	return gso{gstar: gstar, mu: mu, norms: norms}
}

// red performs the size-reduction step of b_k against b_j (j < k),
// per §4.4: b_k -= round(μ[j,k])·b_j, with μ updated in place for every
// row l <= j affected by the subtraction.
func red(b *linalg.Matrix, g *gso, k, j int) {
	if g.norms[j].IsZero() {
		return
	}
	m := g.mu.Get(k, j)
	s := m.Round()
	if s.IsZero() {
		return
	}

	bj := b.Column(j)
	bk := b.Column(k)
	_ = bk.SubScaledInPlace(s, bj)

	g.mu.Set(k, j, m.Sub(s))
	for l := 0; l < j; l++ {
		mlk := g.mu.Get(k, l)
		mlj := g.mu.Get(j, l)
		g.mu.Set(k, l, mlk.Sub(s.Mul(mlj)))
	}
}

// lovaszHolds reports whether the Lovász condition holds at index k:
// ‖g_k‖² >= (δ - μ[k-1,k]²)·‖g_{k-1}‖². A zero ‖g_k‖² (the
// redundant-generator case) fails the condition, so the swap walks the
// dependent vector toward the front. A zero ‖g_{k-1}‖² is treated as
// holding, so a vector already walked to the front is not swapped back.
func lovaszHolds(g *gso, k int, delta rational.Rational) bool {
	if g.norms[k-1].IsZero() {
		return true
	}
	mu := g.mu.Get(k, k-1)
	lhs := g.norms[k]
	rhs := delta.Sub(mu.Mul(mu)).Mul(g.norms[k-1])

	return lhs.Cmp(rhs) >= 0
}

// Reduce LLL-reduces the generating set formed by basis's columns with
// quality parameter opts.Delta (default 99/100), returning a new basis
// with every column that reduced to the zero vector stripped (§4.4).
// The input basis is not mutated.
func Reduce(basis *linalg.Matrix, opts ...Option) (*linalg.Matrix, error) {
	cfg := NewOptions(opts...)
	n := basis.Width()
	if n == 0 {
		return basis.Clone(), nil
	}

	b := basis.Clone()
	g := computeGSO(b)
	k := 1

	for k < n {
		for j := k - 1; j >= 0; j-- {
			red(b, &g, k, j)
		}

		if lovaszHolds(&g, k, cfg.Delta) {
			k++
			continue
		}

		swapColumns(b, k, k-1)
		g = computeGSO(b)
		if k-1 > 0 {
			k--
		} else {
			k = 1
		}
	}

	return stripZeroColumns(b), nil
}

// swapColumns exchanges columns i and j of m in place.
func swapColumns(m *linalg.Matrix, i, j int) {
	_ = linalg.SwapVectors(m.Column(i), m.Column(j))
}

// stripZeroColumns returns a copy of b with every all-zero column
// removed, preserving the relative order of the surviving columns.
func stripZeroColumns(b *linalg.Matrix) *linalg.Matrix {
	keep := make([]int, 0, b.Width())
	for c := 0; c < b.Width(); c++ {
		col := b.Column(c)
		nonZero := false
		for i := 0; i < col.Size(); i++ {
			if !col.Get(i).IsZero() {
				nonZero = true
				break
			}
		}
		if nonZero {
			keep = append(keep, c)
		}
	}

	out, _ := linalg.NewMatrix(len(keep), b.Height())
	for newC, oldC := range keep {
		_ = out.SetColumn(newC, b.Column(oldC))
	}

	return out
}
