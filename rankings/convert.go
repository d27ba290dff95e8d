// Package rankings - conversions between tied-group rankings and the
// index-vector form, and construction of Positions matrices from voter
// rankings.
//
// Input rankings usually arrive as ordered bucket lists ([][]int); the
// solver works on index vectors. Departure rankings must cover every
// element; voter rankings may omit elements (those become Unranked in the
// Positions matrix).
package rankings

// FromBuckets converts an ordered bucket list covering all n elements into
// an index vector. Steps:
//  1. Validate element coverage: every element of [0, n) appears exactly once.
//  2. Write bucket indices into a fresh vector.
//
// Returns ErrBucketOutOfRange for elements outside [0, n),
// ErrDuplicateElement for repeats, ErrIncompleteRanking for missing
// elements.
//
// Complexity: O(n) time, O(n) space.
func FromBuckets(buckets [][]int, n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	r := make([]int, n)
	seen := make([]bool, n)

	var (
		b, i  int
		e     int
		total int
	)
	for b = range buckets {
		for i = range buckets[b] {
			e = buckets[b][i]
			if e < 0 || e >= n {
				return nil, ErrBucketOutOfRange
			}
			if seen[e] {
				return nil, ErrDuplicateElement
			}
			seen[e] = true
			r[e] = b
			total++
		}
	}
	if total != n {
		return nil, ErrIncompleteRanking
	}
	// Empty buckets would leave gaps in the index range.
	if err := Validate(r, n); err != nil {
		return nil, err
	}

	return r, nil
}

// ToBuckets converts a valid index vector into its ordered bucket list.
//
// Returns the validation error of r when it is not a valid bucket order.
//
// Complexity: O(n) time, O(n) space.
func ToBuckets(r []int, n int) ([][]int, error) {
	if err := Validate(r, n); err != nil {
		return nil, err
	}
	out := make([][]int, MaxBucket(r)+1)

	var i int
	for i = 0; i < n; i++ {
		out[r[i]] = append(out[r[i]], i)
	}

	return out, nil
}

// NewPositionsFromBuckets builds a Positions matrix from m voter rankings
// given as ordered bucket lists over n elements. Voters may omit elements;
// omitted elements are Unranked for that voter. Duplicate elements within
// one voter's ranking are rejected.
//
// Complexity: O(n·m) time and memory.
func NewPositionsFromBuckets(voters [][][]int, n int) (*Positions, error) {
	if n <= 0 || len(voters) == 0 {
		return nil, ErrBadShape
	}
	p, err := NewPositions(n, len(voters))
	if err != nil {
		return nil, err
	}

	var (
		v, b, i int
		e       int
	)
	for v = range voters {
		for b = range voters[v] {
			for i = range voters[v][b] {
				e = voters[v][b][i]
				if e < 0 || e >= n {
					return nil, ErrBucketOutOfRange
				}
				if p.data[e*p.m+v] != Unranked {
					return nil, ErrDuplicateElement
				}
				p.data[e*p.m+v] = b
			}
		}
	}

	return p, nil
}
