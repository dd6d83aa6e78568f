// Package rational implements exact-precision rational arithmetic over
// arbitrary-precision integers.
//
// Every value is normalized at construction: zero is always 0/1, and any
// non-zero p/q has q > 0 and gcd(|p|, q) = 1. There is no floating-point
// anywhere in this package — every operation (+, -, *, /, Pow, Floor,
// Ceil, Round, Mod) stays exact, which is the load-bearing property the
// lattice-reduction and simplex kernels built on top of it depend on.
//
//   - Construction: NewInt, NewBigInt, New(num, den)
//   - Arithmetic: Add, Sub, Mul, Quo, Neg, Inv, Pow
//   - Rounding: Floor, Ceil, Round, Abs, Sgn
//   - Predicates: IsInt, IsZero, Cmp, Equal
//
// AI-Hints:
//   - Prefer NewInt for small literal constants; it avoids a big.Int
//     allocation round-trip for values that fit in an int64.
//   - Round implements (x + 1/2).Floor, round half up (see DESIGN.md Open
//     Question (a)) — it is not the commercial/half-to-even convention.
package rational
