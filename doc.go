// Package marketclear computes market-clearing price vectors for
// assignment markets — n buyers, n products, integer valuations — by
// raising prices on over-demanded product sets until Hall's marriage
// condition holds and a perfect matching exists.
//
// 🚀 What is marketclear?
//
//	A small, in-memory library that brings together:
//		• Valuation models: immutable valuation matrix + mutable price vector
//		• Adjusted valuations: utility = value − price, recomputed per round
//		• Preference graphs: each buyer's tied row-maximum product set
//		• Hall checks: direct power-set enumeration or matching-based
//		• The clearing loop: detect violation → raise prices → normalize
//		• Matching extraction: read off who buys what at clearing prices
//
// ✨ Why choose marketclear?
//
//   - Minimal API – package-level functions over a plain Model
//   - Deterministic – injected RNG, fixed default seed, no time sources
//   - Rock-solid errors – sentinel errors only, matched via errors.Is
//   - Pure Go – no cgo, no hidden runtime deps
//
// Everything is organized under two subpackages:
//
//	valuation/ — the Model: valuation matrix, price vector, adjusted cache
//	clearing/  — preference graph, Hall checks, the solve loop, validation
//
// Quick ASCII example (3 buyers, 3 products, arrows = preferred at p=0):
//
//	    B0──►P0        after clearing, every buyer points at a
//	    B1──►P0        distinct product and prices explain why
//	    B2──►P1
//
// Dive into examples/ for full fixed-matrix and random-market walkthroughs.
//
//	go get github.com/katalvlaran/marketclear
package marketclear
