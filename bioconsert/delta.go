// Package bioconsert - per-element delta-cost computation.
//
// For a candidate element e currently in bucket b, one O(n) pass over the
// cost-matrix row of e fills two scratch vectors with *marginal* deltas:
//
//   - change[t]: the cost of crossing one more bucket boundary towards an
//     existing bucket t. Only the entries adjacent to b hold full move
//     deltas; the directed prefix sums in search.go turn the marginals
//     into full deltas for the rest.
//   - add[t]: likewise for inserting a new singleton bucket so that it
//     ends up at index t (pushing the bucket currently at t, and
//     everything above, up by one).
//
// Elements sharing e's bucket cannot be priced against a fixed boundary
// during the pass; their contributions are accumulated into three scalars
// and folded into the positions adjacent to b afterwards.
package bioconsert

// computeDeltaCosts scans every element e2 and accumulates marginal move
// deltas for elem into change and add. row is elem's cost-matrix row
// (length 3n, layout 3·e2 + relation); b is elem's current bucket.
//
// Both scratch vectors must be zeroed over the active prefix before the
// call. Returns whether elem is alone in its bucket; the caller feeds that
// flag to the move application, which must not re-derive it after mutating
// the ranking.
//
// Complexity: O(n), zero allocations.
func computeDeltaCosts(r []int, row []float64, elem, b int, change, add []float64) bool {
	var (
		alone = true
		e2    int
		b2    int
		pos   int

		// Contributions of the elements tied with elem in bucket b.
		tiedBefore float64
		tiedAfter  float64
		tiedTied   float64
	)

	for e2 = 0; e2 < len(r); e2++ {
		b2 = r[e2]
		switch {
		case b < b2:
			// e2 sits above elem. Tying elem into bucket b2 trades the
			// "before" cost for the "tied" cost; crossing past it to b2+1
			// trades "tied" for "after". A fresh singleton just past e2
			// trades "before" for "after" directly.
			change[b2] += row[pos+2] - row[pos]
			change[b2+1] += row[pos+1] - row[pos+2]
			add[b2+1] += row[pos+1] - row[pos]
		case b > b2:
			// Mirror image below elem.
			change[b2] += row[pos+2] - row[pos+1]
			if b2 != 0 {
				change[b2-1] += row[pos] - row[pos+2]
			}
			add[b2] += row[pos] - row[pos+1]
		default:
			if e2 != elem {
				alone = false
				tiedBefore += row[pos]
				tiedAfter += row[pos+1]
				tiedTied += row[pos+2]
			}
		}
		pos += 3
	}

	// Fold the same-bucket contributions into the positions adjacent to b:
	// leaving the bucket downwards turns ties into "before" costs, upwards
	// into "after" costs.
	if b != 0 {
		change[b-1] += tiedBefore - tiedTied
	}
	change[b+1] += tiedAfter - tiedTied
	add[b+1] += tiedAfter - tiedTied
	add[b] += tiedBefore - tiedTied

	return alone
}
