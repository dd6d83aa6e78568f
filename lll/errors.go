package lll

import "errors"

// ErrEmptyBasis indicates Reduce was called on a zero-width basis.
var ErrEmptyBasis = errors.New("lll: empty basis")
