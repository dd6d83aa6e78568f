package enumerate

import "errors"

// ErrDimensionMismatch indicates sortedBInv, lp, and order disagree on
// the number of lattice dimensions.
var ErrDimensionMismatch = errors.New("enumerate: dimension mismatch")
