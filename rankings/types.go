// Package rankings: sentinel error set and the Positions matrix.
// All exported functions MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered conditions;
// panics are reserved for documented programmer-error contracts.
package rankings

import "errors"

// Unranked marks an element absent from a voter's ranking inside a
// Positions matrix. Any negative entry is treated as unranked; this is the
// conventional value.
const Unranked = -1

var (
	// ErrBadShape is returned when requested dimensions are non-positive or
	// a supplied buffer does not match them.
	ErrBadShape = errors.New("rankings: invalid shape")

	// ErrOutOfRange indicates an element or voter index outside valid bounds.
	ErrOutOfRange = errors.New("rankings: index out of range")

	// ErrNilPositions indicates a nil *Positions receiver or argument.
	ErrNilPositions = errors.New("rankings: nil positions")

	// ErrBadLength indicates a bucket-order vector whose length does not
	// match the expected number of elements.
	ErrBadLength = errors.New("rankings: ranking has wrong length")

	// ErrBucketOutOfRange indicates a bucket index outside [0, n) in a
	// bucket-order vector, or an element outside [0, n) in a tied-group
	// ranking.
	ErrBucketOutOfRange = errors.New("rankings: bucket index out of range")

	// ErrNonContiguous indicates bucket indices that do not form the
	// contiguous set {0, 1, …, max}.
	ErrNonContiguous = errors.New("rankings: bucket indices not contiguous")

	// ErrDuplicateElement indicates an element listed twice in a tied-group
	// ranking.
	ErrDuplicateElement = errors.New("rankings: duplicate element")

	// ErrIncompleteRanking indicates a tied-group ranking that does not
	// cover every element where full coverage is required.
	ErrIncompleteRanking = errors.New("rankings: ranking does not cover all elements")
)

// Positions is a flat row-major n×m int matrix. Entry (x, v) holds the
// bucket index of element x in voter v's ranking, or a negative value
// (conventionally Unranked) when voter v does not rank x.
//
// Non-negative entries only need to preserve intra-voter order; they are
// compared pairwise within a column and never used as magnitudes.
type Positions struct {
	n, m int   // elements, voters
	data []int // flat backing storage, length n*m
}

// NewPositions creates an n×m Positions matrix with every entry Unranked.
//
// Complexity: O(n·m) time and memory.
func NewPositions(n, m int) (*Positions, error) {
	if n <= 0 || m <= 0 {
		return nil, ErrBadShape
	}
	data := make([]int, n*m)
	var i int
	for i = range data {
		data[i] = Unranked
	}

	return &Positions{n: n, m: m, data: data}, nil
}

// NewPositionsFromFlat wraps a copy of a flat row-major buffer of length
// n*m into a Positions matrix.
//
// Complexity: O(n·m).
func NewPositionsFromFlat(data []int, n, m int) (*Positions, error) {
	if n <= 0 || m <= 0 || len(data) != n*m {
		return nil, ErrBadShape
	}
	cp := make([]int, len(data))
	copy(cp, data)

	return &Positions{n: n, m: m, data: cp}, nil
}

// NewPositionsFromRows builds a Positions matrix from n per-element rows of
// m voter entries each.
//
// Complexity: O(n·m).
func NewPositionsFromRows(rows [][]int) (*Positions, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	var (
		n = len(rows)
		m = len(rows[0])
		x int
	)
	data := make([]int, n*m)
	for x = 0; x < n; x++ {
		if len(rows[x]) != m {
			return nil, ErrBadShape
		}
		copy(data[x*m:(x+1)*m], rows[x])
	}

	return &Positions{n: n, m: m, data: data}, nil
}

// Elements returns the number of elements n.
func (p *Positions) Elements() int { return p.n }

// Voters returns the number of voters m.
func (p *Positions) Voters() int { return p.m }

// At returns the position of element x in voter v's ranking.
//
// Complexity: O(1).
func (p *Positions) At(x, v int) (int, error) {
	if p == nil {
		return 0, ErrNilPositions
	}
	if x < 0 || x >= p.n || v < 0 || v >= p.m {
		return 0, ErrOutOfRange
	}

	return p.data[x*p.m+v], nil
}

// Set assigns the position of element x in voter v's ranking. Negative pos
// means unranked.
//
// Complexity: O(1).
func (p *Positions) Set(x, v, pos int) error {
	if p == nil {
		return ErrNilPositions
	}
	if x < 0 || x >= p.n || v < 0 || v >= p.m {
		return ErrOutOfRange
	}
	p.data[x*p.m+v] = pos

	return nil
}

// Row returns the backing subslice of length m holding element x's
// positions across all voters.
//
// Contract (programmer error, panics on violation): 0 ≤ x < Elements().
// The slice aliases internal storage; callers must not grow it.
func (p *Positions) Row(x int) []int {
	return p.data[x*p.m : (x+1)*p.m]
}

// Clone returns a deep copy.
//
// Complexity: O(n·m).
func (p *Positions) Clone() *Positions {
	if p == nil {
		return nil
	}
	cp := make([]int, len(p.data))
	copy(cp, p.data)

	return &Positions{n: p.n, m: p.m, data: cp}
}
