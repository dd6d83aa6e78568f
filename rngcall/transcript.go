package rngcall

// CallEntry is one recorded transcript entry: a call at a known
// absolute seed-update index, optionally marked filter_only (it
// contributes only to post-enumeration replay validation, never to the
// lattice itself).
type CallEntry struct {
	Index      int
	Call       RandomCall
	FilterOnly bool
}

// Transcript is the ordered list of CallEntry values a Reverser
// accumulates. The index provider starts at 0 and advances by each
// call's Skips after every append; explicit skip(k) calls advance it
// independently of any call.
type Transcript struct {
	Entries []CallEntry
	next    int
}

// NewTranscript returns an empty transcript positioned at index 0.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records call at the transcript's current index, advances the
// index by call.Skips(), and returns the index the call was recorded
// at.
func (t *Transcript) Append(call RandomCall, filterOnly bool) int {
	idx := t.next
	t.Entries = append(t.Entries, CallEntry{Index: idx, Call: call, FilterOnly: filterOnly})
	t.next += call.Skips()

	return idx
}

// Skip advances the index provider by k without recording an entry.
func (t *Transcript) Skip(k int) {
	t.next += k
}

// NonFilterEntries returns the entries that contribute to the lattice
// (FilterOnly == false), in transcript order.
func (t *Transcript) NonFilterEntries() []CallEntry {
	out := make([]CallEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if !e.FilterOnly {
			out = append(out, e)
		}
	}

	return out
}
