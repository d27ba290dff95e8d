// Package bioconsert - unified entry points for the consensus solver.
//
// Solve builds the pairwise cost matrix from voter positions and a scoring
// scheme, then delegates to SolveWithMatrix, which runs the improvement
// engine over every departure ranking independently. The split mirrors the
// lifetimes: the matrix is built once per invocation, the working vector
// and scratch buffers are reused across departures.
package bioconsert

import (
	"github.com/pierreandrieu/corankco/pairwise"
	"github.com/pierreandrieu/corankco/rankings"
)

// Solve computes a locally optimal consensus for each departure ranking.
//
// On return departures[k] holds a local-minimum bucket order reachable
// from the input row by single-element relocations, and delta[k] has been
// incremented by the (non-positive) cost change relative to the input row.
// Callers who want absolute costs pre-seed delta[k] with the departure
// cost (see pairwise.CostMatrix.Cost).
//
// Contracts:
//   - p non-nil with n ≥ 1 elements, m ≥ 1 voters; s valid.
//   - every departures[k] is a valid contiguous bucket order of length n.
//   - len(delta) == len(departures) ≥ 1.
//
// Errors: sentinels from this package, pairwise and rankings. No row is
// mutated unless all rows validate.
//
// Complexity: O(n²·m) for the matrix plus O(Σ sweeps · n²) for the search.
func Solve(p *rankings.Positions, s pairwise.Scheme, departures [][]int, delta []float64, opts Options) error {
	cm, err := pairwise.NewCostMatrix(p, s)
	if err != nil {
		return err
	}

	return SolveWithMatrix(cm, departures, delta, opts)
}

// SolveWithMatrix runs the improvement engine over every departure ranking
// against a prebuilt cost matrix. Rows are independent; each is improved
// to a fixed point (subject to opts.MaxSweeps), mutated in place, and its
// cost change accumulated into delta[k].
//
// Validation of all rows happens before any row is mutated; a validation
// failure therefore leaves departures and delta untouched.
//
// Complexity: O(R·n) validation + the per-row engine cost.
func SolveWithMatrix(cm *pairwise.CostMatrix, departures [][]int, delta []float64, opts Options) error {
	if cm == nil {
		return ErrNilCostMatrix
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	if len(departures) == 0 {
		return ErrNoDepartures
	}
	if len(delta) != len(departures) {
		return ErrDimensionMismatch
	}

	var (
		n = cm.Elements()
		k int
	)
	for k = range departures {
		if len(departures[k]) != n {
			return ErrDimensionMismatch
		}
		if err := rankings.Validate(departures[k], n); err != nil {
			return err
		}
	}

	// One working vector and one pair of scratch buffers for all rows.
	var (
		r      = make([]int, n)
		change = make([]float64, n+2)
		add    = make([]float64, n+3)
	)
	for k = range departures {
		copy(r, departures[k])
		delta[k] += improveRanking(cm, r, change, add, opts)
		copy(departures[k], r)
	}

	return nil
}
