// Package lcg models a linear congruential generator: state update
// s <- (a*s + b) mod m, plus the derived operations needed to fast
// forward or rewind a seed without replaying every intermediate state
// (§4.6).
//
// LCG is an immutable value (A, B, M, and a precomputed PowerOfTwo
// flag so Mod can mask instead of dividing on moduli like Java's 2^48).
// OfStep(k) composes k applications of Next into a single derived LCG
// via square-and-accumulate in the (a, b) semigroup — O(log k)
// multiplications instead of O(k) — and admits negative k whenever A is
// invertible modulo M, returning ErrUnsupportedStep otherwise.
//
// Random is a mutable cursor pairing an LCG with a current seed;
// Skip/NextSeed/SetSeed/Scramble advance or inspect it. JAVA is the
// standard Java java.util.Random parameter set (§6); NumericalRecipes
// and Borland are two more well-known 32-bit LCG families, included so
// the reverser pipeline is not hard-wired to one bit width.
package lcg
