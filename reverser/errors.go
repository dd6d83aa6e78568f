package reverser

import "errors"

// ErrNoSeedCalls indicates Solve was called with an empty or
// all-filter transcript: there is nothing to build a lattice from.
var ErrNoSeedCalls = errors.New("reverser: no lattice-contributing seed calls")

// ErrDegenerateLattice indicates LLL reduction stripped more or fewer
// columns than the expected single redundant generator, leaving a
// non-square basis that can't be inverted. Should not occur for an
// invertible LCG multiplier; surfaces only for pathological generators.
var ErrDegenerateLattice = errors.New("reverser: degenerate lattice basis")
