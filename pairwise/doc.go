// Package pairwise condenses a collection of voter rankings into a dense
// pairwise cost matrix: for every ordered pair of elements (x, y) it
// precomputes the penalty, summed over voters, of a consensus placing x
// before y, after y, or tied with y.
//
// The penalty model is a scoring Scheme: two 6-vectors dotted against the
// per-pair relation counts (before, after, tied, only_x, only_y, none)
// observed across voters. The classical Kendall-τ style disagreement count
// and the unifying treatment of unranked elements are provided as presets.
//
// Storage is a single flat row-major [n][n][3] float64 slice; the local
// search in package bioconsert walks one 3n-entry row per candidate
// element, which is the cache-friendly access pattern the layout exists
// for.
//
// Performance:
//
//   - Build: O(n²·m) time, O(n²) memory, no allocations beyond the matrix.
//   - At / Row: O(1).
//   - Cost: O(n²).
package pairwise
