package clearing_test

import (
	"testing"

	"github.com/katalvlaran/marketclear/clearing"
	"github.com/katalvlaran/marketclear/valuation"
)

// BenchmarkSolve_PowerSet measures full convergence on a seeded 8-buyer
// market with direct subset enumeration (2⁸−1 subsets per round).
func BenchmarkSolve_PowerSet(b *testing.B) {
	src, err := valuation.NewRandom(8, 20, valuation.RNGFromSeed(42))
	if err != nil {
		b.Fatalf("setup NewRandom failed: %v", err)
	}
	opts := clearing.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = clearing.Solve(src.Clone(), opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_MaxMatching measures full convergence on a seeded
// 64-buyer market with the polynomial deficiency check.
func BenchmarkSolve_MaxMatching(b *testing.B) {
	src, err := valuation.NewRandom(64, 50, valuation.RNGFromSeed(42))
	if err != nil {
		b.Fatalf("setup NewRandom failed: %v", err)
	}
	opts := clearing.DefaultOptions()
	opts.Mode = clearing.MaxMatching

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = clearing.Solve(src.Clone(), opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkFindHallViolation_PowerSet isolates the subset walk on a
// clearing (worst-case: all subsets visited) 16-buyer identity graph.
func BenchmarkFindHallViolation_PowerSet(b *testing.B) {
	const n = 16
	prefs := make([][]int, n)
	for i := range prefs {
		prefs[i] = []int{i}
	}
	opts := clearing.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found, err := clearing.FindHallViolation(prefs, opts); err != nil || found {
			b.Fatalf("unexpected result: found=%v err=%v", found, err)
		}
	}
}
