package state

// Simplify reduces the vector to canonical form in place. Idempotent.
//
// Two passes alternate until a fixpoint:
//
//  1. Covering elimination - drop every member covered by another
//     (duplicates keep the first encountered).
//  2. Adjacency merge - members constraining the same positions and
//     disagreeing at exactly one of them merge into a single member
//     with that position freed.
//
// The covered assignment set is unchanged; afterwards no member covers
// another and no two members with equal masks differ in one position.
// Both passes strictly shrink the member count, so the loop terminates.
func (v *Vector) Simplify() {
	for {
		removed := v.dropCovered()
		merged := v.mergeAdjacent()
		if !removed && !merged {
			return
		}
	}
}

// dropCovered removes members covered by another member. For a pair of
// equal members the earlier one survives. Reports whether anything was
// removed.
func (v *Vector) dropCovered() bool {
	if len(v.objs) < 2 {
		return false
	}

	removed := make([]bool, len(v.objs))
	changed := false
	for i, cand := range v.objs {
		if removed[i] {
			continue
		}
		for j, other := range v.objs {
			if i == j || removed[j] || !other.Covers(cand) {
				continue
			}
			// Equal members cover each other; keep the first encountered.
			if j > i && cand.Covers(other) {
				continue
			}
			removed[i] = true
			changed = true

			break
		}
	}
	if !changed {
		return false
	}

	out := make([]*Object, 0, len(v.objs))
	for i, o := range v.objs {
		if !removed[i] {
			out = append(out, o)
		}
	}
	v.objs = out

	return true
}

// mergeAdjacent performs one adjacency-merge pass and reports whether
// any pair merged.
//
// Members are grouped by their defined mask. Within a group, for each
// position the mask defines, members are bucketed by their values at all
// other defined positions; a bucket of size two is exactly an adjacent
// pair on that position (duplicates were removed by dropCovered, so a
// bucket never exceeds two). Each merged member lands in the group with
// the position cleared on the next pass.
func (v *Vector) mergeAdjacent() bool {
	if len(v.objs) < 2 {
		return false
	}

	// 1) Group member indices by defined mask, insertion order preserved.
	groups := make(map[string][]int)
	var order []string
	for idx, o := range v.objs {
		k := bitsKey(o.defined)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], idx)
	}

	consumed := make([]bool, len(v.objs))
	var merged []*Object
	changed := false

	for _, gk := range order {
		idxs := groups[gk]
		if len(idxs) < 2 {
			continue
		}
		mask := v.objs[idxs[0]].defined

		// 2) For each defined position, bucket by the remaining values.
		for pos, ok := mask.NextSet(0); ok; pos, ok = mask.NextSet(pos + 1) {
			buckets := make(map[string][]int)
			var border []string
			for _, idx := range idxs {
				if consumed[idx] {
					continue
				}
				rest := v.objs[idx].value.Clone()
				rest.Clear(pos)
				bk := bitsKey(rest)
				if _, seen := buckets[bk]; !seen {
					border = append(border, bk)
				}
				buckets[bk] = append(buckets[bk], idx)
			}

			// 3) Every full bucket is one mergeable pair.
			for _, bk := range border {
				pair := buckets[bk]
				if len(pair) < 2 {
					continue
				}
				a, b := pair[0], pair[1]
				merged = append(merged, mergeAt(v.objs[a], pos))
				consumed[a], consumed[b] = true, true
				changed = true
			}
		}
	}
	if !changed {
		return false
	}

	out := make([]*Object, 0, len(v.objs))
	for idx, o := range v.objs {
		if !consumed[idx] {
			out = append(out, o)
		}
	}
	v.objs = append(out, merged...)

	return true
}

// mergeAt returns a copy of o with position pos freed to don't-care.
func mergeAt(o *Object, pos uint) *Object {
	nd := o.defined.Clone()
	nd.Clear(pos)
	nv := o.value.Clone()
	nv.Clear(pos)

	return &Object{n: o.n, defined: nd, value: nv}
}
