// Package pairwise - the dense cost matrix and its builder.
package pairwise

import (
	"errors"

	"github.com/pierreandrieu/corankco/rankings"
)

// Relation selects one of the three consensus placements of a pair (x, y).
type Relation int

const (
	// Before prices x strictly before y.
	Before Relation = iota
	// After prices x strictly after y.
	After
	// Tied prices x and y in the same bucket.
	Tied
)

// relations is the width of the innermost matrix dimension.
const relations = 3

var (
	// ErrNilMatrix indicates a nil *CostMatrix receiver or argument.
	ErrNilMatrix = errors.New("pairwise: nil cost matrix")

	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("pairwise: element index out of range")

	// ErrBadRelation indicates a Relation outside {Before, After, Tied}.
	ErrBadRelation = errors.New("pairwise: unknown relation")
)

// CostMatrix is the flat row-major [n][n][3] table of pairwise placement
// penalties summed over voters. Entry (x, y, rel) is the penalty of the
// consensus placing x in relation rel to y.
//
// Invariants (established by NewCostMatrix):
//   - At(x, y, Before) == At(y, x, After)
//   - At(x, y, Tied) == At(y, x, Tied)
//   - the diagonal is zero and is never read by the solver.
type CostMatrix struct {
	n    int
	data []float64 // length n*n*3
}

// NewCostMatrix builds the cost matrix for the given voter positions under
// scheme s.
//
// For each unordered pair (x, y) with x < y, every voter's opinion is
// classified into one of the six relation-count classes; the counts are
// then dotted against the scheme vectors and written to both the (x, y)
// and (y, x) entries.
//
// Contracts:
//   - p non-nil, s.Validate() == nil.
//
// Complexity: O(n²·m) time, O(n²) memory; no allocations beyond the matrix.
func NewCostMatrix(p *rankings.Positions, s Scheme) (*CostMatrix, error) {
	if p == nil {
		return nil, rankings.ErrNilPositions
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var (
		n    = p.Elements()
		m    = p.Voters()
		data = make([]float64, n*n*relations)

		// Per-pair relation counts, indexed by the Count* constants.
		counts [SchemeWidth]float64

		x, y, v      int
		posX, posY   int
		rowX, rowY   []int
		xBefY, yBefX float64
		xyTied       float64
		wAfter       = s.swapped()
		idxXY, idxYX int
	)

	for x = 0; x < n; x++ {
		rowX = p.Row(x)
		for y = x + 1; y < n; y++ {
			rowY = p.Row(y)
			counts = [SchemeWidth]float64{}

			for v = 0; v < m; v++ {
				posX = rowX[v]
				posY = rowY[v]
				switch {
				case posX >= 0 && posY >= 0:
					switch {
					case posX > posY:
						counts[CountAfter]++
					case posX < posY:
						counts[CountBefore]++
					default:
						counts[CountTied]++
					}
				case posX >= 0:
					counts[CountOnlyX]++
				case posY >= 0:
					counts[CountOnlyY]++
				default:
					counts[CountNone]++
				}
			}

			xBefY = dot6(s.Before, counts)
			yBefX = dot6(wAfter, counts)
			xyTied = dot6(s.Tied, counts)

			idxXY = relations * (n*x + y)
			idxYX = relations * (n*y + x)
			data[idxXY+int(Before)] = xBefY
			data[idxXY+int(After)] = yBefX
			data[idxXY+int(Tied)] = xyTied
			data[idxYX+int(Before)] = yBefX
			data[idxYX+int(After)] = xBefY
			data[idxYX+int(Tied)] = xyTied
		}
	}

	return &CostMatrix{n: n, data: data}, nil
}

// dot6 is the 6-wide dot product of a scheme vector and relation counts.
func dot6(w, c [SchemeWidth]float64) float64 {
	return w[0]*c[0] + w[1]*c[1] + w[2]*c[2] + w[3]*c[3] + w[4]*c[4] + w[5]*c[5]
}

// Elements returns the number of elements n.
func (cm *CostMatrix) Elements() int { return cm.n }

// At returns the penalty of placing x in relation rel to y.
//
// Complexity: O(1).
func (cm *CostMatrix) At(x, y int, rel Relation) (float64, error) {
	if cm == nil {
		return 0, ErrNilMatrix
	}
	if x < 0 || x >= cm.n || y < 0 || y >= cm.n {
		return 0, ErrOutOfRange
	}
	if rel < Before || rel > Tied {
		return 0, ErrBadRelation
	}

	return cm.data[relations*(cm.n*x+y)+int(rel)], nil
}

// Row returns the backing subslice of length 3n holding element x's
// penalties against every other element: entry 3·y+int(rel) prices placing
// x in relation rel to y. This is the solver's hot-path accessor.
//
// Contract (programmer error, panics on violation): 0 ≤ x < Elements().
// The slice aliases internal storage and must be treated as read-only.
func (cm *CostMatrix) Row(x int) []float64 {
	return cm.data[relations*cm.n*x : relations*cm.n*(x+1)]
}

// Cost evaluates the total penalty of the bucket order r against the
// matrix: the sum over unordered pairs x < y of the entry selected by r's
// relative placement of x and y.
//
// This is the quantity the solver's returned delta is measured in; callers
// typically use it to seed the per-departure accumulator.
//
// Returns the rankings validation sentinels for invalid r.
//
// Complexity: O(n²).
func (cm *CostMatrix) Cost(r []int) (float64, error) {
	if cm == nil {
		return 0, ErrNilMatrix
	}
	if err := rankings.Validate(r, cm.n); err != nil {
		return 0, err
	}

	var (
		sum  float64
		x, y int
		row  []float64
	)
	for x = 0; x < cm.n; x++ {
		row = cm.Row(x)
		for y = x + 1; y < cm.n; y++ {
			switch {
			case r[x] < r[y]:
				sum += row[relations*y+int(Before)]
			case r[x] > r[y]:
				sum += row[relations*y+int(After)]
			default:
				sum += row[relations*y+int(Tied)]
			}
		}
	}

	return sum, nil
}
