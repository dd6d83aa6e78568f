package rngcall

import "errors"

// Sentinel errors for the rngcall package.
var (
	// ErrInvalidRange indicates a min/max pair with min > max.
	ErrInvalidRange = errors.New("rngcall: min > max")

	// ErrNotPowerOfTwo indicates IntRangePow2 was constructed with a
	// non-power-of-two or non-positive range.
	ErrNotPowerOfTwo = errors.New("rngcall: range is not a positive power of two")
)
