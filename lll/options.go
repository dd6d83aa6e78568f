package lll

import (
	"math/big"

	"github.com/katalvlaran/seedlattice/rational"
)

// DefaultDelta is the quality parameter used by Reduce when no WithDelta
// option is given: 99/100, per §4.4.
var DefaultDelta = rational.MustNew(big.NewInt(99), big.NewInt(100))

// Options configures a Reduce call.
type Options struct {
	Delta rational.Rational
}

// Option configures an Options instance.
type Option func(*Options)

// WithDelta overrides the Lovász quality parameter (must satisfy
// 1/4 < delta <= 1 for the classical convergence guarantee; Reduce does
// not itself validate this — out-of-range deltas are a caller error).
func WithDelta(delta rational.Rational) Option {
	return func(o *Options) { o.Delta = delta }
}

// NewOptions builds an Options with DefaultDelta, applying overrides.
func NewOptions(opts ...Option) Options {
	o := Options{Delta: DefaultDelta}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
