package state

// AssignmentIterator lazily enumerates every concrete boolean assignment
// a Vector covers, member by member, as full name→value maps. Don't-care
// positions expand by a binary odometer (false first, last free position
// fastest), so the sequence is deterministic; Reset rewinds to the start
// and two runs yield identical sequences. Members that overlap may
// repeat an assignment.
type AssignmentIterator struct {
	vec    *Vector
	names  []string
	member int    // index of the member being expanded
	free   []uint // don't-care positions of the current member
	odo    []bool // current expansion of free, false first
	spent  bool   // current member exhausted, advance on next call
}

// Assignments returns an iterator over the vector's expansions using the
// supplied name table (one name per position). The iterator is finite
// and restartable; the empty vector yields an empty sequence.
func (v *Vector) Assignments(names []string) (*AssignmentIterator, error) {
	if len(names) != v.n {
		return nil, ErrNameCount
	}

	it := &AssignmentIterator{vec: v, names: names}
	it.Reset()

	return it, nil
}

// Reset rewinds the iterator to the first assignment.
func (it *AssignmentIterator) Reset() {
	it.member = 0
	it.spent = false
	it.load()
}

// load prepares the odometer for the current member, if any.
func (it *AssignmentIterator) load() {
	it.free = it.free[:0]
	if it.member >= len(it.vec.objs) {
		return
	}
	o := it.vec.objs[it.member]
	for i := uint(0); i < uint(o.n); i++ {
		if !o.defined.Test(i) {
			it.free = append(it.free, i)
		}
	}
	it.odo = make([]bool, len(it.free))
}

// Next returns the next covered assignment, or false when the sequence
// is exhausted. The returned map is owned by the caller.
func (it *AssignmentIterator) Next() (map[string]bool, bool) {
	for {
		if it.member >= len(it.vec.objs) {
			return nil, false
		}
		if it.spent {
			it.member++
			it.spent = false
			it.load()

			continue
		}

		// Emit the current expansion of the current member.
		o := it.vec.objs[it.member]
		out := make(map[string]bool, o.n)
		for i := uint(0); i < uint(o.n); i++ {
			if o.defined.Test(i) {
				out[it.names[i]] = o.value.Test(i)
			}
		}
		for k, pos := range it.free {
			out[it.names[pos]] = it.odo[k]
		}

		it.advance()

		return out, true
	}
}

// advance steps the odometer; on wrap-around the member is exhausted.
func (it *AssignmentIterator) advance() {
	for k := len(it.odo) - 1; k >= 0; k-- {
		if !it.odo[k] {
			it.odo[k] = true

			return
		}
		it.odo[k] = false
	}
	it.spent = true
}
