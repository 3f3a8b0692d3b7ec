// Package valuation: Model is a concrete, row-major assignment-market
// model storing the valuation matrix and adjusted cache in flat slices
// for performance and cache friendliness.

package valuation

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// modelErrorf wraps an underlying sentinel with method context.
func modelErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Model.%s(%d,%d): %w", method, row, col, err)
}

// Model holds one assignment market: n buyers, n products.
// values is the immutable valuation matrix in row-major order
// (values[i*n+j] = buyer i's value for product j), prices is the
// per-product price vector, and adjusted caches values[i][j] − prices[j].
// The adjusted cache is only valid after RecomputeAdjusted; it is always
// a pure function of values and prices, never independent state.
type Model struct {
	n        int   // number of buyers == number of products
	values   []int // flat valuation matrix, length n*n, never mutated
	prices   []int // per-product prices, length n
	adjusted []int // flat adjusted cache, length n*n
}

// New creates a Model from a supplied square valuation matrix.
// Stage 1 (Validate): at least one row, square shape, non-negative entries.
// Stage 2 (Prepare): deep-copy into flat row-major storage.
// Stage 3 (Finalize): zero prices, adjusted cache primed from them.
// Complexity: O(n²) time and memory.
func New(values [][]int) (*Model, error) {
	n := len(values)
	if n < 1 {
		return nil, fmt.Errorf("New: %w", ErrBadDimension)
	}
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("New: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrNonSquare)
		}
	}

	m := &Model{
		n:        n,
		values:   make([]int, n*n),
		prices:   make([]int, n),
		adjusted: make([]int, n*n),
	}
	for i, row := range values {
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("New: values[%d][%d]=%d: %w",
					i, j, v, ErrNegativeValue)
			}
			m.values[i*n+j] = v
		}
	}
	// Prices are all zero, so the adjusted cache equals the valuations.
	m.RecomputeAdjusted()

	return m, nil
}

// NewRandom creates a Model with n buyers and independent uniform random
// valuations in [0, maxValuation]. The randomness source is injected:
// rng==nil falls back to the deterministic default stream (see rng.go),
// so tests can fix a seed and reproduce the market exactly.
// Complexity: O(n²) time and memory.
func NewRandom(n, maxValuation int, rng *rand.Rand) (*Model, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewRandom: n=%d: %w", n, ErrBadDimension)
	}
	if maxValuation < 0 {
		return nil, fmt.Errorf("NewRandom: maxValuation=%d: %w",
			maxValuation, ErrNegativeValue)
	}

	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}

	m := &Model{
		n:        n,
		values:   make([]int, n*n),
		prices:   make([]int, n),
		adjusted: make([]int, n*n),
	}
	for k := range m.values {
		m.values[k] = r.Intn(maxValuation + 1) // uniform in [0, maxValuation]
	}
	m.RecomputeAdjusted()

	return m, nil
}

// Buyers returns n, the number of buyers (and products).
// Complexity: O(1).
func (m *Model) Buyers() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Model) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, modelErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.n {
		return 0, modelErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns buyer i's original valuation of product j.
// Complexity: O(1).
func (m *Model) At(i, j int) (int, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.values[idx], nil
}

// AdjustedAt returns the cached adjusted valuation values[i][j] − prices[j].
// The cache reflects the prices as of the last RecomputeAdjusted call.
// Complexity: O(1).
func (m *Model) AdjustedAt(i, j int) (int, error) {
	idx, err := m.indexOf("AdjustedAt", i, j)
	if err != nil {
		return 0, err
	}

	return m.adjusted[idx], nil
}

// Price returns the current price of product j.
// Complexity: O(1).
func (m *Model) Price(j int) (int, error) {
	if j < 0 || j >= m.n {
		return 0, modelErrorf("Price", 0, j, ErrOutOfRange)
	}

	return m.prices[j], nil
}

// RecomputeAdjusted overwrites the full adjusted cache from the current
// prices: adjusted[i][j] = values[i][j] − prices[j]. The cache slice is
// reused; no allocation happens here.
// Complexity: O(n²) time, O(1) extra memory.
func (m *Model) RecomputeAdjusted() {
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := 0; j < m.n; j++ {
			m.adjusted[base+j] = m.values[base+j] - m.prices[j]
		}
	}
}

// IncrementPrice raises the price of product j by exactly one unit.
// The adjusted cache is NOT touched; callers batch increments and then
// call RecomputeAdjusted once per round.
// Complexity: O(1).
func (m *Model) IncrementPrice(j int) error {
	if j < 0 || j >= m.n {
		return modelErrorf("IncrementPrice", 0, j, ErrOutOfRange)
	}
	m.prices[j]++

	return nil
}

// NormalizePrices shifts every price down by min(prices) so the minimum
// becomes zero. All pairwise price differences are preserved, hence the
// per-buyer ordering of adjusted valuations (and so the set of row
// maxima) is unchanged — normalization is safe between Hall checks.
// The adjusted cache is NOT touched; call RecomputeAdjusted afterwards.
// Complexity: O(n).
func (m *Model) NormalizePrices() {
	low := m.prices[0]
	for _, p := range m.prices[1:] {
		if p < low {
			low = p
		}
	}
	if low == 0 {
		return
	}
	for j := range m.prices {
		m.prices[j] -= low
	}
}

// Prices returns a copy of the current price vector.
// Complexity: O(n).
func (m *Model) Prices() []int {
	out := make([]int, m.n)
	copy(out, m.prices)

	return out
}

// SetPrices installs a candidate price vector wholesale, replacing the
// current one. Returns ErrPriceLength when len(p) != n. The adjusted
// cache is NOT recomputed here; call RecomputeAdjusted afterwards.
// Complexity: O(n).
func (m *Model) SetPrices(p []int) error {
	if len(p) != m.n {
		return fmt.Errorf("Model.SetPrices: got %d prices, want %d: %w",
			len(p), m.n, ErrPriceLength)
	}
	copy(m.prices, p)

	return nil
}

// Values returns a deep copy of the original valuation matrix as a 2D
// grid, for display and logging. Mutating the result never affects the
// model.
// Complexity: O(n²).
func (m *Model) Values() [][]int {
	return m.grid(m.values)
}

// Adjusted returns a deep copy of the adjusted cache as a 2D grid,
// reflecting the prices as of the last RecomputeAdjusted call.
// Complexity: O(n²).
func (m *Model) Adjusted() [][]int {
	return m.grid(m.adjusted)
}

// grid copies a flat row-major slice into a fresh [][]int.
func (m *Model) grid(flat []int) [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]int, m.n)
		copy(row, flat[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy of the Model, prices and adjusted cache
// included. Useful for snapshotting before a mutating validation.
// Complexity: O(n²).
func (m *Model) Clone() *Model {
	c := &Model{
		n:        m.n,
		values:   make([]int, len(m.values)),
		prices:   make([]int, len(m.prices)),
		adjusted: make([]int, len(m.adjusted)),
	}
	copy(c.values, m.values)
	copy(c.prices, m.prices)
	copy(c.adjusted, m.adjusted)

	return c
}

// String implements fmt.Stringer over the valuation grid for easy
// debugging, one bracketed row per line.
// Complexity: O(n²).
func (m *Model) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.values[i*m.n+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
