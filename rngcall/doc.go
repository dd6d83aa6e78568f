// Package rngcall implements the closed RandomCall taxonomy (§4.7, §6):
// a sealed set of variants, each translating one domain observation
// (a boolean, an int in a range, a float, ...) into one or two SeedCall
// bit-range constraints on the underlying LCG's post-update state, plus
// a replay validator that checks the ORIGINAL domain constraint (not
// the looser seed-range approximation) against a forward-advanced
// Random.
//
// Every variant satisfies RandomCall: Skips (how many state updates it
// consumes), ToSeed (the SeedCall expansion used to build the reverser's
// lattice — may omit a sub-update that carries no information), and
// Validate (the post-enumeration replay check). SeedCall itself is the
// trivial base variant: a direct bound on one state.
//
// JavaRandom replays java.util.Random's next-primitive family
// (nextBoolean, nextInt, nextInt(bound), nextLong, nextFloat,
// nextDouble) against an lcg.Random cursor, bit-for-bit compatible with
// the reference implementation's rejection-sampling nextInt(bound).
//
// Transcript records an ordered list of CallEntry values with absolute
// seed-update indices, as the Reverser accumulates addCall/addFilter/
// skip calls (§3 Transcript).
package rngcall
