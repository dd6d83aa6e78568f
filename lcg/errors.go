package lcg

import "errors"

// ErrUnsupportedStep indicates OfStep was called with a negative k while
// the LCG's multiplier is not invertible modulo its modulus.
var ErrUnsupportedStep = errors.New("lcg: unsupported negative step: multiplier not invertible modulo m")
