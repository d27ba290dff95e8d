// Package bioconsert - sentinel errors, options and defaults.
package bioconsert

import "errors"

// Validation / input-shape sentinels. Ranking-structure violations are
// reported with the rankings package sentinels, forwarded as-is.
var (
	// ErrNilCostMatrix indicates a nil *pairwise.CostMatrix argument.
	ErrNilCostMatrix = errors.New("bioconsert: nil cost matrix")

	// ErrDimensionMismatch indicates a departure row whose length does not
	// match the cost matrix order, or a delta accumulator whose length does
	// not match the number of departure rankings.
	ErrDimensionMismatch = errors.New("bioconsert: dimension mismatch")

	// ErrNoDepartures indicates an empty departure set.
	ErrNoDepartures = errors.New("bioconsert: no departure rankings")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("bioconsert: invalid options")
)

// Options defines governance knobs for the local search. The zero value is
// valid and equals DefaultOptions().
type Options struct {
	// MaxSweeps bounds the number of improving sweeps per ranking.
	// Zero ⇒ unlimited: run until a full sweep applies no move, i.e. to a
	// strict local minimum. When the cap stops the search early the
	// returned ranking may not be locally optimal.
	MaxSweeps int
}

// DefaultOptions returns the production defaults: run every departure
// ranking to a strict local minimum.
func DefaultOptions() Options {
	return Options{MaxSweeps: 0}
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxSweeps < 0 {
		return ErrBadOptions
	}

	return nil
}
