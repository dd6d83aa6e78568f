package rngcall

import (
	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/katalvlaran/seedlattice/rational"
)

// RandomCall is the closed family of domain observations the reverser
// understands (§3, §4.7). Every variant knows how many seed updates it
// consumes, how to expand itself into lattice-level bit-range
// constraints, and how to check itself against a forward replay.
type RandomCall interface {
	// Skips returns the number of seed updates this call consumes.
	Skips() int

	// ToSeed expands the call into an ordered list of SeedCall bounds on
	// the post-update state at each of its skips, in order. It may
	// return fewer than Skips entries when a later sub-update carries no
	// usable information.
	ToSeed() []SeedCall

	// Validate advances random by Skips updates and reports whether the
	// resulting domain value satisfies this call's original (possibly
	// tighter) constraint.
	Validate(random *lcg.Random) bool
}

// SeedCall is the base RandomCall variant: a direct [Min, Max] bound on
// one post-update seed state.
type SeedCall struct {
	Min, Max rational.Rational
}

// Skips is always 1 for a bare SeedCall.
func (c SeedCall) Skips() int { return 1 }

// ToSeed returns the call itself as its own one-entry expansion.
func (c SeedCall) ToSeed() []SeedCall { return []SeedCall{c} }

// Validate advances random one step and checks the new state against
// [Min, Max].
func (c SeedCall) Validate(random *lcg.Random) bool {
	s := rational.NewBigInt(random.NextSeed())

	return !s.Less(c.Min) && !c.Max.Less(s)
}
