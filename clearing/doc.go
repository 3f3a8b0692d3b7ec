// Package clearing computes market-clearing price vectors over a
// valuation.Model by iteratively raising prices on over-demanded
// product sets until Hall's marriage condition holds.
//
// 🚀 What is clearing?
//
//	At prices p, buyer i's utility for product j is V[i][j] − p[j].
//	The preference graph links each buyer to every product tied for her
//	row maximum. A price vector clears the market when that bipartite
//	graph admits a perfect matching — equivalently (Hall's theorem),
//	when every buyer subset S satisfies |N(S)| ≥ |S|.
//
// ✨ Key operations:
//   - BuildPreferenceGraph — per-buyer tied-maximum product sets
//   - FindHallViolation    — first violated subset's neighborhood N(S)
//   - ResolveViolation     — +1 on each product in N(S), then normalize
//   - Solve                — the full loop, to convergence
//   - CheckClears          — pure validity query (no state mutated)
//   - AdoptPrices          — explicit candidate installation
//   - IsValidPriceVector   — adopt-then-check, the classic combined form
//   - PerfectMatching      — extract a buyer→product assignment
//
// ⚙️ Hall-check modes (Options.Mode):
//
//   - PowerSet (default): enumerate all 2ⁿ−1 non-empty buyer subsets
//     directly. Exponential by nature — the classical condition has no
//     cheaper direct test — so it is capped at MaxPowerSetBuyers and
//     intended for small markets (the demos use n ≤ 8). Enumeration
//     order is implementation-defined; only "some violation was found"
//     is contractual.
//
//   - MaxMatching: polynomial alternating-path deficiency check. When a
//     maximum matching leaves a buyer unmatched, the alternating tree
//     rooted there yields a subset S with |N(S)| = |S| − 1, which is
//     reported exactly like a PowerSet violation. Same convergence,
//     different (still implementation-defined) violation choice.
//
// Termination:
//
//	Each round either finds no violation (done) or raises at least one
//	price before renormalizing. Valuations are bounded integers, so the
//	relative-price lattice reachable before all violations dissolve is
//	finite and the loop terminates for every well-formed model.
//
// Complexity:
//
//	PowerSet round:    O(2ⁿ·n) Hall check + O(n²) rebuilds.
//	MaxMatching round: O(n³) worst case.
//
// Errors:
//
//   - ErrNilModel: nil *valuation.Model passed to an entry point.
//   - ErrTooManyBuyers: PowerSet mode with n > MaxPowerSetBuyers.
//   - ErrBadMode: Options.Mode is not a known HallMode.
//   - ErrRoundLimit: Options.MaxRounds > 0 was exhausted before convergence.
package clearing
