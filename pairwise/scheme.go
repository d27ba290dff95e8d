// Package pairwise - scoring schemes.
//
// A Scheme prices the placement of a pair (x, y) in the consensus given
// what the voters did with that pair. For each voter the pair falls into
// exactly one of six classes; the per-class counts are dotted against the
// scheme's weight vectors.
package pairwise

import (
	"errors"
	"math"
)

// Relation-count indices shared by Scheme vectors and the builder.
// For a pair (x, y) and one voter:
const (
	// CountBefore: both ranked, x strictly before y.
	CountBefore = iota
	// CountAfter: both ranked, x strictly after y.
	CountAfter
	// CountTied: both ranked in the same bucket.
	CountTied
	// CountOnlyX: x ranked, y unranked.
	CountOnlyX
	// CountOnlyY: y ranked, x unranked.
	CountOnlyY
	// CountNone: both unranked.
	CountNone

	// SchemeWidth is the number of relation classes.
	SchemeWidth = 6
)

// ErrBadScheme indicates a scheme vector containing NaN or ±Inf.
var ErrBadScheme = errors.New("pairwise: scheme weights must be finite")

// Scheme holds the two weight vectors of the penalty model.
//
//   - Before[k] is the per-voter penalty contribution of placing x strictly
//     before y in the consensus when the voter's opinion falls in class k.
//   - Tied[k] is the contribution of tying x and y in the consensus.
//
// The penalty of placing x strictly after y uses Before with the roles of
// x and y swapped (indices CountBefore↔CountAfter and CountOnlyX↔CountOnlyY).
type Scheme struct {
	Before [SchemeWidth]float64
	Tied   [SchemeWidth]float64
}

// InducedMeasureScheme counts strict disagreements and ignores pairs that
// are not co-ranked by a voter: a misordered pair costs 1, a consensus tie
// against a strict voter opinion costs 1, a consensus strict order against
// a voter tie costs 1.
func InducedMeasureScheme() Scheme {
	return Scheme{
		Before: [SchemeWidth]float64{0, 1, 1, 0, 0, 0},
		Tied:   [SchemeWidth]float64{1, 1, 0, 0, 0, 0},
	}
}

// UnifyingScheme additionally treats every unranked element as if the
// voter had placed it in a virtual bucket behind all ranked ones: ranking
// x before an element the voter did rank while x itself was unranked is a
// disagreement, and tying with a half-ranked pair costs as a tie against a
// strict opinion.
func UnifyingScheme() Scheme {
	return Scheme{
		Before: [SchemeWidth]float64{0, 1, 1, 0, 1, 1},
		Tied:   [SchemeWidth]float64{1, 1, 0, 1, 1, 0},
	}
}

// Validate rejects schemes containing NaN or infinite weights.
//
// Complexity: O(1).
func (s Scheme) Validate() error {
	var k int
	for k = 0; k < SchemeWidth; k++ {
		if math.IsNaN(s.Before[k]) || math.IsInf(s.Before[k], 0) {
			return ErrBadScheme
		}
		if math.IsNaN(s.Tied[k]) || math.IsInf(s.Tied[k], 0) {
			return ErrBadScheme
		}
	}

	return nil
}

// swapped returns the Before vector with the x/y roles exchanged, used to
// price "x after y" from the same relation counts.
func (s Scheme) swapped() [SchemeWidth]float64 {
	w := s.Before
	w[CountBefore], w[CountAfter] = w[CountAfter], w[CountBefore]
	w[CountOnlyX], w[CountOnlyY] = w[CountOnlyY], w[CountOnlyX]

	return w
}
