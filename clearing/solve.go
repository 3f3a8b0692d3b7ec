package clearing

import (
	"fmt"

	"github.com/katalvlaran/marketclear/valuation"
)

// ResolveViolation raises the price of every product in the reported
// neighborhood by one unit, then renormalizes so min(price) == 0. The
// quantity incremented is the set of over-demanded PRODUCTS (the
// violating subset's neighborhood), not the buyer subset itself. An
// empty product set is a no-op, a normal control-flow signal rather
// than an error.
//
// The adjusted cache is left stale on purpose; the solve loop
// recomputes it exactly once per round.
//
// Complexity: O(n).
func ResolveViolation(m *valuation.Model, products []int) error {
	if m == nil {
		return ErrNilModel
	}

	for _, j := range products {
		if err := m.IncrementPrice(j); err != nil {
			return fmt.Errorf("ResolveViolation: %w", err)
		}
	}
	m.NormalizePrices()

	return nil
}

// Solve drives the model's prices to a market-clearing vector.
//
// Steps, repeated per round:
//  1. Recompute the adjusted cache from the current prices (O(n²)).
//  2. Rebuild the preference graph (O(n²)).
//  3. Test Hall's condition per opts.Mode.
//  4. Violation found: raise prices on its neighborhood, normalize,
//     next round.
//  5. No violation: done — return the (normalized) clearing vector.
//
// Termination: every round that does not terminate raises at least one
// price before renormalizing, and integral bounded valuations admit only
// finitely many relative price configurations before all violations
// dissolve; see the package documentation. Options.MaxRounds > 0 adds an
// explicit guard returning ErrRoundLimit.
//
// Errors: ErrNilModel, ErrBadMode, ErrTooManyBuyers, ErrRoundLimit.
//
// Complexity per round: O(2ⁿ·n) in PowerSet mode, O(n³) in MaxMatching
// mode, plus the O(n²) rebuilds.
func Solve(m *valuation.Model, opts Options) ([]int, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	round := 0
	for {
		if opts.MaxRounds > 0 && round >= opts.MaxRounds {
			return nil, fmt.Errorf("Solve: after %d rounds: %w", round, ErrRoundLimit)
		}
		round++

		// 1) Fresh adjusted valuations for the current prices.
		m.RecomputeAdjusted()

		// 2) Fresh preference graph; never partially updated.
		prefs, err := BuildPreferenceGraph(m)
		if err != nil {
			return nil, err
		}

		// 3) Hall check.
		products, found, err := FindHallViolation(prefs, opts)
		if err != nil {
			return nil, err
		}

		// 5) Market clears at the current prices.
		if !found {
			if opts.Verbose {
				fmt.Printf("Solve: cleared after %d round(s), prices %v\n", round, m.Prices())
			}

			return m.Prices(), nil
		}

		// 4) Raise the over-demanded products and renormalize.
		if opts.Verbose {
			fmt.Printf("Solve: round %d raising products %v\n", round, products)
		}
		if err = ResolveViolation(m, products); err != nil {
			return nil, err
		}
	}
}
