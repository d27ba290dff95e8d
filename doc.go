// Package corankco computes consensus rankings: given a collection of
// input rankings over a shared set of elements (with ties and missing
// elements allowed), it searches for a bucket order that minimizes a
// weighted pairwise disagreement cost.
//
// 🚀 What is corankco?
//
//	A small, deterministic rank-aggregation toolkit built around the
//	BioConsert local-search heuristic:
//
//	  • Bucket-order primitives: validation, conversions, positions matrices
//	  • Pairwise cost matrices under configurable scoring schemes
//	  • A first-improvement local search over single-element relocations
//
// ✨ Why choose corankco?
//
//   - Deterministic          — fixed sweep order, no RNG, reproducible output
//   - Allocation-conscious   — flat row-major storage, reusable scratch buffers
//   - Pure Go                — no cgo, no hidden dependencies
//
// Everything is organized under three subpackages:
//
//	rankings/   — bucket orders, positions matrices, validation & conversions
//	pairwise/   — scoring schemes and the [n][n][3] pairwise cost matrix
//	bioconsert/ — the local-search engine and the multi-departure solver
//
// Quick ASCII example (three voters ranking four genes):
//
//	voter 1:  [g0] < [g1, g2] < [g3]
//	voter 2:  [g1] < [g0] < [g2]        (g3 unranked)
//	voter 3:  [g0] < [g2] < [g1, g3]
//
//	a consensus is one bucket order minimizing the summed pairwise cost.
//
// Each subpackage's example_test.go holds runnable examples.
//
//	go get github.com/pierreandrieu/corankco
package corankco
