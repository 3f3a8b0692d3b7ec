// Package clearing: modes, options, and sentinel errors.

package clearing

import "errors"

// Sentinel errors for clearing operations. Callers match with errors.Is.
var (
	// ErrNilModel indicates a nil *valuation.Model was passed in.
	ErrNilModel = errors.New("clearing: model is nil")

	// ErrTooManyBuyers indicates PowerSet mode was requested for a market
	// too large for direct subset enumeration (n > MaxPowerSetBuyers).
	ErrTooManyBuyers = errors.New("clearing: too many buyers for power-set Hall check")

	// ErrBadMode indicates an unknown HallMode in Options.
	ErrBadMode = errors.New("clearing: unknown Hall-check mode")

	// ErrRoundLimit indicates Options.MaxRounds was exhausted before the
	// market cleared. Only possible when MaxRounds > 0.
	ErrRoundLimit = errors.New("clearing: round limit exceeded before convergence")
)

// MaxPowerSetBuyers caps direct power-set enumeration. Beyond this the
// 2ⁿ subset walk is impractical regardless of word size; use MaxMatching.
const MaxPowerSetBuyers = 24

// HallMode selects how Hall's condition is tested each round.
//
//   - PowerSet    — enumerate every non-empty buyer subset directly.
//     Exact mirror of the textbook condition; O(2ⁿ·n) per round.
//
//   - MaxMatching — alternating-path maximum matching; a deficiency
//     certificate (an unmatched buyer's alternating tree) stands in for
//     the violating subset. O(n³) per round.
type HallMode int

const (
	// PowerSet mode: direct subset enumeration, first violation reported.
	PowerSet HallMode = iota

	// MaxMatching mode: matching-based deficiency check, polynomial.
	MaxMatching
)

// Options configures the Hall check and the solve loop.
//
// Fields:
//   - Mode      — PowerSet (default) or MaxMatching.
//   - Verbose   — if true, Solve prints a one-line trace per round.
//   - MaxRounds — optional safety valve; 0 means no explicit limit
//     (termination is guaranteed for well-formed models, the limit only
//     bounds pathological callers that mutate prices mid-solve).
type Options struct {
	Mode      HallMode
	Verbose   bool
	MaxRounds int
}

// DefaultOptions returns Options with PowerSet mode, no tracing, and no
// round limit.
func DefaultOptions() Options {
	return Options{
		Mode:      PowerSet,
		Verbose:   false,
		MaxRounds: 0,
	}
}

// validate rejects unknown modes up front so every entry point fails the
// same way.
func (o Options) validate() error {
	if o.Mode != PowerSet && o.Mode != MaxMatching {
		return ErrBadMode
	}

	return nil
}
