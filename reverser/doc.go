// Package reverser implements the seed-recovery pipeline (component H):
// accumulate a transcript of observed java.util.Random calls, build the
// Hidden-Number-Problem lattice and bounding polytope those calls imply
// on the LCG's internal state, reduce and order the lattice, hand it to
// the branch-and-bound enumerator, and replay-validate every candidate
// seed the enumerator produces before yielding it.
//
// Unknowns. Flattened seed-call k (0-indexed, in transcript order) sits
// at absolute update index idx_k; gap_k = idx_k - idx_0 is its distance
// from the first call. Writing z for the scrambled-state variable right
// after the first call's update (the quantity a call's SeedCall bounds
// actually constrain), the generator's affine structure gives
//
//	seed_k = a^gap_k * z  -  k_k * m  +  o_k        (mod arithmetic dropped: exact integers)
//
// for an unknown integer z and unknown integer multiples k_k, where
// o_k is the deterministic additive term of advancing a zero-seeded
// generator by gap_k steps. This is a Hidden Number Problem instance:
// solve(lcg) builds the (n+1)-generator, n-dimensional lattice basis B
// (column 0 the a^gap_k "z-direction", columns 1..n the "-m*e_k"
// directions), LLL-reduces it down to a genuine n x n basis, and
// branch-and-bounds over the resulting lattice points whose image lands
// inside the per-call [min,max] box.
package reverser
