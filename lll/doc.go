// Package lll implements classical Lenstra-Lenstra-Lovász lattice basis
// reduction over exact rationals (§4.4).
//
// Reduce accepts a generating set of column vectors (which may carry one
// more vector than the lattice's rank — the reverser pipeline's lattice
// construction deliberately hands LLL a redundant generator alongside
// the rank's worth of scaled unit vectors) and returns a reduced basis
// with any vector that reduced to the zero vector stripped, per §4.4's
// "on termination strip leading all-zero columns".
//
// All arithmetic is exact-rational (github.com/katalvlaran/seedlattice/rational)
// — no floating point anywhere in this package, by design (§9): a
// floating LLL would miscount lattice points on the adversarial inputs
// this solver is built for.
//
// AI-Hints:
//   - Pass WithDelta to tune the Lovász quality parameter; the spec
//     default is 99/100.
//   - Reduce recomputes the full Gram-Schmidt orthogonalization after
//     every column swap rather than patching it incrementally with
//     Cohen's swap-update formulas.
package lll
