// Package seedlattice recovers java.util.Random seeds from observed
// outputs.
//
// Given a transcript of calls made against a live java.util.Random
// instance — nextInt(), nextBoolean(), nextLong(), nextFloat(),
// nextDouble(), and nextInt(bound) — along with the observed bounds on
// each result, seedlattice finds every 48-bit internal seed consistent
// with them. It treats each observation as a linear constraint on the
// generator's internal state (a Hidden Number Problem instance), builds
// the implied integer lattice, reduces it with LLL, and branch-and-bounds
// over the reduced lattice to enumerate survivors, replay-validating
// each one against the full transcript before returning it.
//
// Package layout:
//
//	rational/  — exact arbitrary-precision rational arithmetic
//	linalg/    — dense rational matrices and vectors, Gauss-Jordan inversion
//	lll/       — Lenstra-Lenstra-Lovász lattice basis reduction
//	simplex/   — two-phase simplex LP solver, for polytope min/max queries
//	lcg/       — linear congruential generator arithmetic, including
//	             fast k-step composition and the java.util.Random family
//	rngcall/   — the closed taxonomy of observable java.util.Random calls
//	enumerate/ — the lazy, splittable branch-and-bound lattice-point walker
//	reverser/  — the seed-recovery pipeline tying the above together
//
// See reverser.Reverser for the main entry point.
package seedlattice
