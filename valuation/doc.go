// Package valuation defines the assignment-market data model: an
// immutable n×n non-negative integer valuation matrix, a mutable price
// vector, and the derived adjusted-valuation cache.
//
// What:
//
//   - Model wraps the valuation matrix V (V[i][j] = buyer i's value for
//     product j) together with a per-product price vector p.
//   - The adjusted cache holds V[i][j] − p[j], fully recomputed on demand;
//     it is always a pure function of V and p, never independent state.
//   - Prices change only through IncrementPrice and NormalizePrices (or
//     wholesale via SetPrices); the valuation matrix never changes.
//
// Why:
//
//   - Market clearing: the clearing package reads the adjusted cache to
//     build preference graphs and drives prices to a clearing vector.
//   - Display: Values/Adjusted/Prices return copies safe to print or log.
//
// Determinism:
//
//   - NewRandom takes an injected *rand.Rand; a nil rng falls back to a
//     fixed-seed default stream. No time-based seeding anywhere.
//
// Complexity:
//
//   - RecomputeAdjusted: O(n²), zero allocation (cache reused).
//   - IncrementPrice / At / AdjustedAt: O(1).
//   - NormalizePrices: O(n).
//
// Errors:
//
//   - ErrBadDimension: requested or supplied dimension is < 1.
//   - ErrNonSquare: supplied matrix rows differ in length from row count.
//   - ErrNegativeValue: a valuation entry (or maxValuation) is negative.
//   - ErrOutOfRange: row or column index outside [0, n).
//   - ErrPriceLength: candidate price vector length ≠ n.
package valuation
