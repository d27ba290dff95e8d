// Package bioconsert_test — shared helpers for the solver tests.
//
// The brute-force relocation enumerator below is an independent ground
// truth: it rebuilds every single-element relocation through the
// tied-group representation, without reusing any of the engine's
// incremental bookkeeping.
package bioconsert_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pierreandrieu/corankco/pairwise"
	"github.com/pierreandrieu/corankco/rankings"
)

// seedDet keeps pseudo-random instances reproducible.
const seedDet = 1337

// costEps tolerates float accumulation noise when comparing costs.
const costEps = 1e-9

// mustMatrix builds a cost matrix from per-element position rows.
func mustMatrix(t *testing.T, rows [][]int, s pairwise.Scheme) *pairwise.CostMatrix {
	t.Helper()
	p, err := rankings.NewPositionsFromRows(rows)
	require.NoError(t, err)
	cm, err := pairwise.NewCostMatrix(p, s)
	require.NoError(t, err)

	return cm
}

// mustCost evaluates a ranking against a matrix.
func mustCost(t *testing.T, cm *pairwise.CostMatrix, r []int) float64 {
	t.Helper()
	c, err := cm.Cost(r)
	require.NoError(t, err)

	return c
}

// randomPositions builds an n×m instance with ~1/4 unranked entries.
func randomPositions(t *testing.T, rng *rand.Rand, n, m int) *rankings.Positions {
	t.Helper()
	p, err := rankings.NewPositions(n, m)
	require.NoError(t, err)
	for x := 0; x < n; x++ {
		for v := 0; v < m; v++ {
			if rng.Intn(4) == 0 {
				continue
			}
			require.NoError(t, p.Set(x, v, rng.Intn(n)))
		}
	}

	return p
}

// randomRanking produces a valid contiguous bucket order over n elements:
// random bucket draws compacted to a gap-free prefix.
func randomRanking(t *testing.T, rng *rand.Rand, n int) []int {
	t.Helper()
	r := make([]int, n)
	for i := range r {
		r[i] = rng.Intn(n)
	}
	compactRanking(r)
	require.NoError(t, rankings.Validate(r, n))

	return r
}

// compactRanking remaps bucket ids onto the contiguous prefix {0..k},
// preserving order.
func compactRanking(r []int) {
	n := len(r)
	used := make([]bool, n)
	for _, b := range r {
		used[b] = true
	}
	remap := make([]int, n)
	next := 0
	for b := 0; b < n; b++ {
		if used[b] {
			remap[b] = next
			next++
		}
	}
	for i := range r {
		r[i] = remap[r[i]]
	}
}

// relocationCandidates enumerates every bucket order reachable from r by
// relocating one element, and validates each candidate.
func relocationCandidates(t *testing.T, r []int) [][]int {
	t.Helper()
	out := enumerateRelocations(r)
	for _, cand := range out {
		require.NoError(t, rankings.Validate(cand, len(r)))
	}

	return out
}

// enumerateRelocations lists every bucket order reachable from r by
// relocating one element: tying it into any surviving bucket, or inserting
// it as a singleton at any position. Built through the tied-group form,
// independently of the engine's incremental bookkeeping.
func enumerateRelocations(r []int) [][]int {
	n := len(r)
	var out [][]int

	for e := 0; e < n; e++ {
		// Bucket list of everything except e, order preserved, empties dropped.
		maxB := rankings.MaxBucket(r)
		rest := make([][]int, 0, maxB+1)
		for b := 0; b <= maxB; b++ {
			var bucket []int
			for i := 0; i < n; i++ {
				if i != e && r[i] == b {
					bucket = append(bucket, i)
				}
			}
			if len(bucket) > 0 {
				rest = append(rest, bucket)
			}
		}

		// Tie e into each surviving bucket.
		for j := range rest {
			cand := make([]int, n)
			for b, bucket := range rest {
				for _, i := range bucket {
					cand[i] = b
				}
			}
			cand[e] = j
			out = append(out, cand)
		}
		// Insert e as a singleton at each position 0..len(rest).
		for j := 0; j <= len(rest); j++ {
			cand := make([]int, n)
			for b, bucket := range rest {
				shift := 0
				if b >= j {
					shift = 1
				}
				for _, i := range bucket {
					cand[i] = b + shift
				}
			}
			cand[e] = j
			out = append(out, cand)
		}
	}

	return out
}

// assertLocalMinimum fails when any single-element relocation strictly
// decreases the cost of r.
func assertLocalMinimum(t *testing.T, cm *pairwise.CostMatrix, r []int) {
	t.Helper()
	base := mustCost(t, cm, r)
	for _, cand := range relocationCandidates(t, r) {
		require.GreaterOrEqual(t, mustCost(t, cm, cand)+costEps, base,
			"improving relocation %v of %v", cand, r)
	}
}
