// Package enumerate implements the lazy, splittable branch-and-bound
// lattice-point enumerator (§4.9, component I): given a sorted B⁻¹ (its
// rows act as the branching gradients, narrowest polytope width first)
// and a LinearProgram describing the feasible region in y-space, it
// yields every integer lattice vector x ∈ ℤⁿ with B·x inside the
// polytope.
//
// Sequence is deliberately small — Next and Split — so it can be driven
// either single-threaded or by a worker pool. A Sequence holds an
// explicit stack of in-progress tree nodes (depth, the LP with
// equalities fixed for shallower depths, and the partial vertex built so
// far) rather than recursing, so Next can suspend between yields the way
// a generator would; each node computes its two integer bounds — via
// Minimize/Maximize on the current depth's gradient — lazily, on first
// visit, exactly as the tree-node description in §4.9 requires.
//
// Run drives N worker goroutines over a Sequence, splitting its root
// into up to N pieces before any worker starts; workers share no
// mutable state beyond the result channel and the cursor handing out
// those pieces.
package enumerate
