package reverser

import (
	"context"
	"math/big"
	"runtime"

	"github.com/katalvlaran/seedlattice/enumerate"
	"github.com/katalvlaran/seedlattice/lcg"
	"github.com/katalvlaran/seedlattice/linalg"
	"github.com/katalvlaran/seedlattice/rngcall"
)

// Reverser accumulates a transcript of observed random calls and, given
// a generator, solves for every initial seed consistent with it (§4.8).
// A Reverser may be reused: Solve never mutates the accumulated
// transcript.
type Reverser struct {
	transcript *rngcall.Transcript
}

// New returns an empty Reverser.
func New() *Reverser {
	return &Reverser{transcript: rngcall.NewTranscript()}
}

// AddCall records call as a lattice-contributing observation, returning
// its assigned absolute index.
func (r *Reverser) AddCall(call rngcall.RandomCall) int {
	return r.transcript.Append(call, false)
}

// AddFilter records call as replay-validation-only: it narrows the
// surviving seeds during Solve's validate step but never enters the
// lattice itself.
func (r *Reverser) AddFilter(call rngcall.RandomCall) int {
	return r.transcript.Append(call, true)
}

// Skip advances the index provider by one update without recording a
// call, modeling an untracked java.util.Random consumption.
func (r *Reverser) Skip() {
	r.transcript.Skip(1)
}

// SkipN advances the index provider by k updates without recording a
// call.
func (r *Reverser) SkipN(k int) {
	r.transcript.Skip(k)
}

// SolveJava is Solve(lcg.JAVA), the common case of recovering a
// java.util.Random seed.
func (r *Reverser) SolveJava() (<-chan *big.Int, error) {
	return r.Solve(lcg.JAVA)
}

// Solve builds the lattice and polytope implied by the accumulated
// transcript under l, enumerates every candidate, replay-validates each
// one against the full transcript, and returns a channel of surviving
// initial seeds (the seed *before* any call in the transcript). The
// channel closes once enumeration and validation finish. Per §5,
// cancellation is the consumer's responsibility: a caller that stops
// receiving before the channel closes simply lets the remaining
// candidates go unconsumed.
func (r *Reverser) Solve(l lcg.LCG) (<-chan *big.Int, error) {
	calls := flatten(r.transcript)
	if len(calls) == 0 {
		return nil, ErrNoSeedCalls
	}

	lat, err := buildLattice(l, calls)
	if err != nil {
		return nil, err
	}

	seq, err := enumerate.New(lat.bInv, lat.lp, lat.order)
	if err != nil {
		return nil, err
	}

	vertices := enumerate.Run(context.Background(), seq, runtime.GOMAXPROCS(0))

	out := make(chan *big.Int)
	go func() {
		defer close(out)
		for v := range vertices {
			y, err := linalg.MulVector(lat.b, v)
			if err != nil {
				continue
			}
			if err := y.AddInPlace(lat.o); err != nil {
				continue
			}
			y0 := y.Get(0)
			if !y0.IsInt() {
				continue
			}
			candidate := y0.Num()

			if !r.validate(l, candidate, lat.firstIdx) {
				continue
			}

			initial, err := rewind(l, candidate, lat.firstIdx)
			if err != nil {
				continue
			}
			out <- initial
		}
	}()

	return out, nil
}

// validate replay-checks every transcript entry (filter and non-filter
// alike) against the state implied by candidate, the seed immediately
// after the first lattice seed-call's update (§4.8 step 9). Each entry
// is seeded independently at the state right before its own first
// update, computed via l.OfStep from candidate — this sidesteps
// sequential gap bookkeeping and handles entries before, after, or
// interleaved with the lattice's contributing calls uniformly.
func (r *Reverser) validate(l lcg.LCG, candidate *big.Int, firstIdx int) bool {
	for _, e := range r.transcript.Entries {
		step, err := l.OfStep(int64(e.Index - 1 - firstIdx))
		if err != nil {
			return false
		}
		replay := lcg.NewRandom(l, step.Next(candidate))
		if !e.Call.Validate(replay) {
			return false
		}
	}

	return true
}

// rewind maps a validated candidate back to the seed before any call in
// the transcript (§4.8 step 10).
func rewind(l lcg.LCG, candidate *big.Int, firstIdx int) (*big.Int, error) {
	step, err := l.OfStep(int64(-(firstIdx + 1)))
	if err != nil {
		return nil, err
	}

	return step.Next(candidate), nil
}
