package clearing

import (
	"fmt"

	"github.com/katalvlaran/marketclear/valuation"
)

// CheckClears reports whether the candidate price vector clears the
// market, WITHOUT touching the model's live prices or adjusted cache —
// a pure query. A wrong-length candidate is simply not clearing:
// (false, nil), deliberately recoverable rather than an error.
//
// The check runs against a private clone of the model, so the caller's
// converged prices survive intact.
//
// Errors: ErrNilModel, ErrBadMode, ErrTooManyBuyers.
//
// Complexity: O(n²) clone + one Hall check per opts.Mode.
func CheckClears(m *valuation.Model, candidate []int, opts Options) (bool, error) {
	if m == nil {
		return false, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return false, err
	}
	if len(candidate) != m.Buyers() {
		return false, nil
	}

	probe := m.Clone()
	if err := probe.SetPrices(candidate); err != nil {
		return false, fmt.Errorf("CheckClears: %w", err)
	}
	probe.RecomputeAdjusted()

	prefs, err := BuildPreferenceGraph(probe)
	if err != nil {
		return false, err
	}
	_, found, err := FindHallViolation(prefs, opts)
	if err != nil {
		return false, err
	}

	return !found, nil
}

// AdoptPrices installs a candidate price vector as the model's live
// prices and recomputes the adjusted cache — the explicit, named
// mutation that IsValidPriceVector performs implicitly.
//
// Errors: ErrNilModel, valuation.ErrPriceLength.
//
// Complexity: O(n²).
func AdoptPrices(m *valuation.Model, candidate []int) error {
	if m == nil {
		return ErrNilModel
	}
	if err := m.SetPrices(candidate); err != nil {
		return fmt.Errorf("AdoptPrices: %w", err)
	}
	m.RecomputeAdjusted()

	return nil
}

// IsValidPriceVector installs the candidate as the model's live price
// vector and reports whether the market clears there: adopt, then
// check. The side effect is part of the contract — after a true or
// false result, Prices() returns the candidate. Callers wanting to keep
// a previously converged vector should use CheckClears instead, or
// snapshot via Clone first.
//
// A wrong-length candidate yields (false, nil) and adopts NOTHING, so
// the call is harmless to model state. Repeating the call with the same
// candidate returns the same result and leaves the installed vector
// unchanged.
//
// Errors: ErrNilModel, ErrBadMode, ErrTooManyBuyers.
//
// Complexity: O(n²) + one Hall check per opts.Mode.
func IsValidPriceVector(m *valuation.Model, candidate []int, opts Options) (bool, error) {
	if m == nil {
		return false, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return false, err
	}
	if len(candidate) != m.Buyers() {
		return false, nil
	}

	if err := AdoptPrices(m, candidate); err != nil {
		return false, err
	}

	prefs, err := BuildPreferenceGraph(m)
	if err != nil {
		return false, err
	}
	_, found, err := FindHallViolation(prefs, opts)
	if err != nil {
		return false, err
	}

	return !found, nil
}
