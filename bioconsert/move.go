// Package bioconsert - move application.
//
// Both moves mutate the ranking in place and keep bucket indices
// contiguous. The alone flag MUST be the one computed by the delta pass
// for the same element and ranking state; re-deriving it after mutation
// would observe the wrong bucket occupancy.
package bioconsert

// applyChangeBucket relocates elem from bucket from into the existing
// bucket whose pre-move index is to. When elem was alone, bucket from
// disappears and every higher bucket id shifts down by one — including the
// just-assigned target, which lands on the shifted id of the same bucket.
// The caller decrements maxBucket in the alone case.
//
// Complexity: O(n) when alone, O(1) otherwise.
func applyChangeBucket(r []int, elem, from, to int, alone bool) {
	r[elem] = to
	if alone {
		var i int
		for i = range r {
			if r[i] > from {
				r[i]--
			}
		}
	}
}

// applyAddBucket moves elem into a fresh singleton bucket at insertion
// position to. Four cases on (direction, alone):
//
//   - from < to, alone: bucket from disappears while the insertion point
//     sits above it, so the ids in between shift down and elem takes to-1.
//   - from < to, not alone: ids at and above to shift up; elem takes to.
//   - from > to, alone: ids in [to, from) shift up into the hole left at
//     from; elem takes to.
//   - from ≥ to, not alone: ids at and above to shift up (splitting elem
//     off its old bucket when from == to); elem takes to.
//
// The caller increments maxBucket in the not-alone cases.
//
// Complexity: O(n).
func applyAddBucket(r []int, elem, from, to int, alone bool) {
	var i int
	if from < to {
		if alone {
			for i = range r {
				if r[i] > from && r[i] < to {
					r[i]--
				}
			}
			r[elem] = to - 1

			return
		}
		for i = range r {
			if r[i] >= to {
				r[i]++
			}
		}
		r[elem] = to

		return
	}

	if alone {
		for i = range r {
			if r[i] >= to && r[i] < from {
				r[i]++
			}
		}
		r[elem] = to

		return
	}
	for i = range r {
		if r[i] >= to {
			r[i]++
		}
	}
	r[elem] = to
}
