package clearing

import "math/bits"

// findViolationPowerSet enumerates every non-empty subset S of the buyer
// index set as a bitmask 1..2ⁿ−1 (ascending mask order — an
// implementation detail, not a contract) and returns the neighborhood
// N(S) of the FIRST subset violating Hall's condition |N(S)| ≥ |S|.
//
// The classical condition has no cheaper direct test: all 2ⁿ−1 subsets
// are visited exactly once. This is the known scalability ceiling of
// PowerSet mode, capped by MaxPowerSetBuyers at the entry points.
//
// Returns (nil, false) when no subset violates — the market clears at
// the prices the preference graph was built from.
//
// Complexity: O(2ⁿ·(n + Σ|prefs[i]|)) time, O(n) scratch memory.
func findViolationPowerSet(prefs [][]int) ([]int, bool) {
	n := len(prefs)
	seen := make([]bool, n) // scratch, reset between subsets
	last := uint64(1)<<uint(n) - 1

	for mask := uint64(1); mask <= last; mask++ {
		size := bits.OnesCount64(mask)

		// Count |N(S)| without materializing the union.
		count := 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			for _, j := range prefs[i] {
				if !seen[j] {
					seen[j] = true
					count++
				}
			}
		}

		violated := count < size

		// Reset scratch for the next subset (touch only marked slots).
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				for _, j := range prefs[i] {
					seen[j] = false
				}
			}
		}

		if violated {
			return neighborhood(prefs, mask, n), true
		}
	}

	return nil, false
}

// FindHallViolation tests Hall's condition over the given preference
// graph and, when violated, reports the neighborhood N(S) of one
// violating buyer subset S — the product set whose prices the solver
// will raise. Which violation is reported depends on Options.Mode and
// is implementation-defined; any violation, once resolved, moves the
// system forward.
//
// Returns (nil, false, nil) when Hall's condition holds for every
// subset. Errors: ErrTooManyBuyers (PowerSet with n > MaxPowerSetBuyers),
// ErrBadMode.
func FindHallViolation(prefs [][]int, opts Options) ([]int, bool, error) {
	if err := opts.validate(); err != nil {
		return nil, false, err
	}

	switch opts.Mode {
	case MaxMatching:
		products, found := findViolationMatching(prefs)

		return products, found, nil
	default: // PowerSet
		if len(prefs) > MaxPowerSetBuyers {
			return nil, false, ErrTooManyBuyers
		}
		products, found := findViolationPowerSet(prefs)

		return products, found, nil
	}
}
