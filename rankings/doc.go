// Package rankings provides the bucket-order primitives shared by the
// corankco packages: the Positions matrix describing where each voter
// placed each element, validation of bucket-order index vectors, and
// conversions between the tied-group representation and the index-vector
// form consumed by the solver.
//
// Representations:
//
//   - Index vector: r of length n, r[i] = bucket index of element i.
//     Valid vectors use contiguous bucket indices {0, 1, …, max(r)}.
//   - Tied groups: [][]int, an ordered list of buckets; elements inside a
//     bucket are tied. This is the form input rankings usually arrive in.
//   - Positions: a flat row-major n×m int matrix; entry (x, v) is the
//     bucket index of element x in voter v's ranking, or Unranked.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors.
//   - Flat single-allocation storage for Positions (cache friendliness is
//     relied upon by the pairwise cost-matrix builder).
package rankings
