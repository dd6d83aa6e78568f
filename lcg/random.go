package lcg

import "math/big"

// Random is a mutable cursor over one LCG's state sequence: an LCG
// reference plus a current seed (§3 Lifecycle).
type Random struct {
	lcg  LCG
	seed *big.Int
}

// NewRandom returns a cursor at the given seed.
func NewRandom(l LCG, seed *big.Int) *Random {
	return &Random{lcg: l, seed: new(big.Int).Set(seed)}
}

// LCG returns the cursor's generator.
func (r *Random) LCG() LCG { return r.lcg }

// Seed returns a copy of the cursor's current state.
func (r *Random) Seed() *big.Int { return new(big.Int).Set(r.seed) }

// SetSeed overwrites the cursor's current state.
func (r *Random) SetSeed(s *big.Int) { r.seed = new(big.Int).Set(s) }

// NextSeed advances the cursor by one step and returns the new state.
func (r *Random) NextSeed() *big.Int {
	r.seed = r.lcg.Next(r.seed)

	return new(big.Int).Set(r.seed)
}

// Skip advances the cursor by k steps (k may be negative if the
// generator's multiplier is invertible) using ofStep(k).Next in a
// single multiplication, without replaying intermediate states.
func (r *Random) Skip(k int64) error {
	step, err := r.lcg.OfStep(k)
	if err != nil {
		return err
	}
	r.seed = step.Next(r.seed)

	return nil
}

// Scramble XORs the cursor's state with the generator's multiplier,
// the involutive seed/state conversion java.util.Random performs on
// construction.
func (r *Random) Scramble() {
	r.seed = r.lcg.Scramble(r.seed)
}
