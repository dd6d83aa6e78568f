package rational

import "errors"

// Sentinel errors for the rational package. All are returned verbatim
// (never wrapped) from the functions that detect them so callers can
// match with errors.Is.
var (
	// ErrZeroDenominator indicates a constructor or Quo/Inv call with a
	// zero denominator or divisor.
	ErrZeroDenominator = errors.New("rational: zero denominator")
)
