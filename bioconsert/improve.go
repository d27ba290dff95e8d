// Package bioconsert - the per-ranking improvement engine.
package bioconsert

import (
	"github.com/pierreandrieu/corankco/pairwise"
	"github.com/pierreandrieu/corankco/rankings"
)

// ImproveRanking runs the local search on a single bucket order, mutating
// r in place, and returns the accumulated cost delta (sum of the deltas of
// all applied moves; ≤ 0, where 0 means r already was a local minimum).
//
// Contracts:
//   - cm non-nil; len(r) == cm.Elements(); r a valid contiguous bucket
//     order (rankings.Validate).
//   - With opts.MaxSweeps == 0 the returned r is a strict local minimum:
//     no single-element change-bucket or add-bucket move decreases the
//     cost.
//
// Complexity: O(s·n²) time for s sweeps, O(n) scratch space.
func ImproveRanking(cm *pairwise.CostMatrix, r []int, opts Options) (float64, error) {
	if cm == nil {
		return 0, ErrNilCostMatrix
	}
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	n := cm.Elements()
	if len(r) != n {
		return 0, ErrDimensionMismatch
	}
	if err := rankings.Validate(r, n); err != nil {
		return 0, err
	}

	change := make([]float64, n+2)
	add := make([]float64, n+3)

	return improveRanking(cm, r, change, add, opts), nil
}

// improveRanking is the validated core shared with the driver, which
// reuses the scratch vectors across departure rankings.
//
// Scratch sizing: change needs indices up to maxBucket+1 ≤ n, add up to
// maxBucket+1 as well; both are re-zeroed over the active prefix before
// each element visit, so stale values beyond the prefix are never read.
func improveRanking(cm *pairwise.CostMatrix, r []int, change, add []float64, opts Options) float64 {
	var (
		n         = len(r)
		maxBucket = rankings.MaxBucket(r)
		delta     float64
		sweeps    int

		elem, b, to int
		alone       bool
		improved    bool
		row         []float64
	)

	for {
		improved = false
		for elem = 0; elem < n; elem++ {
			b = r[elem]

			clear(change[:maxBucket+2])
			clear(add[:maxBucket+2])
			row = cm.Row(elem)
			alone = computeDeltaCosts(r, row, elem, b, change, add)

			if to = searchChangeBucket(b, change, maxBucket); to >= 0 {
				improved = true
				delta += change[to]
				applyChangeBucket(r, elem, b, to, alone)
				if alone {
					maxBucket--
				}

				continue
			}
			if to = searchAddBucket(b, add, maxBucket); to >= 0 {
				improved = true
				delta += add[to]
				applyAddBucket(r, elem, b, to, alone)
				if !alone {
					maxBucket++
				}
			}
		}

		if !improved {
			return delta
		}
		sweeps++
		if opts.MaxSweeps > 0 && sweeps >= opts.MaxSweeps {
			return delta
		}
	}
}
