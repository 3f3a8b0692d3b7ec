package clearing

import (
	"github.com/katalvlaran/marketclear/valuation"
)

// BuildPreferenceGraph builds the preference graph from the model's
// adjusted cache: prefs[i] lists, in ascending column order, every
// product j whose adjusted valuation ties buyer i's row maximum.
//
// The cache reflects the prices as of the model's last RecomputeAdjusted
// call; callers inside the solve loop recompute first. Two passes per
// row: one to find the maximum, one to collect the ties — ties are
// intentional, several products may be co-optimal.
//
// Guarantee: every prefs[i] is non-empty, since a maximum always exists
// over a non-empty row.
//
// Complexity: O(n²) time, O(n + Σ|prefs[i]|) memory.
func BuildPreferenceGraph(m *valuation.Model) ([][]int, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	n := m.Buyers()
	adjusted := m.Adjusted()
	prefs := make([][]int, n)

	for i := 0; i < n; i++ {
		row := adjusted[i]

		// Pass 1: row maximum.
		maxVal := row[0]
		for _, v := range row[1:] {
			if v > maxVal {
				maxVal = v
			}
		}

		// Pass 2: collect every tied column.
		var set []int
		for j, v := range row {
			if v == maxVal {
				set = append(set, j)
			}
		}
		prefs[i] = set
	}

	return prefs, nil
}

// neighborhood returns the sorted union of the preference sets of the
// buyers selected by mask (bit i set ⇒ buyer i in S).
//
// Complexity: O(n + Σ|prefs[i]| over selected i).
func neighborhood(prefs [][]int, mask uint64, n int) []int {
	seen := make([]bool, n)
	var union []int
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		for _, j := range prefs[i] {
			if !seen[j] {
				seen[j] = true
			}
		}
	}
	// Emit in ascending product order for a deterministic report.
	for j := 0; j < n; j++ {
		if seen[j] {
			union = append(union, j)
		}
	}

	return union
}
