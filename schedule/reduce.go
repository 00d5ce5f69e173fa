package schedule

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/statealg/state"
)

// Reduce multiplies all input vectors into one and returns the
// simplified product: the set of assignments permitted by every input.
// The inputs are never mutated. For a fixed input sequence the
// reduction order, and therefore the work performed, is deterministic;
// the resulting assignment set is the same for any order.
//
// The empty input collection yields ErrNoVectors; mismatched widths
// surface state.ErrLengthMismatch. If any input or intermediate product
// is empty the whole product is the contradiction and Reduce returns an
// empty vector immediately.
func Reduce(vectors []*state.Vector, opts *Options) (*state.Vector, error) {
	// 1) Resolve and validate configuration.
	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	log := resolved.logger()

	// 2) Validate the input collection.
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	for _, vec := range vectors {
		if vec == nil {
			return nil, state.ErrNilVector
		}
		if vec.Width() != vectors[0].Width() {
			return nil, state.ErrLengthMismatch
		}
	}
	width := vectors[0].Width()
	for _, vec := range vectors {
		if vec.IsEmpty() {
			// One empty factor annihilates the product.
			return state.NewVector(width), nil
		}
	}

	// 3) Work on a private copy of the collection.
	work := make([]*state.Vector, len(vectors))
	copy(work, vectors)

	// 4) Phase 1: predator-prey reduction.
	work, done, err := reducePredators(work, &resolved, log)
	if err != nil || done != nil {
		return done, err
	}

	// 5) Phase 2: Jaccard-similarity clustering down to one vector.
	return reduceClusters(work, &resolved, log)
}

// reducePredators folds each small vector (the predator) into every
// strictly larger one, then retires it. A predator is retired only
// after at least one fold, so its constraint always survives in the
// working set. Returns a non-nil vector when the reduction finished
// early: a contradiction, or a working set already reduced to one.
func reducePredators(work []*state.Vector, opts *Options, log hclog.Logger) ([]*state.Vector, *state.Vector, error) {
	for len(work) > 1 {
		p := smallest(work)
		if work[p].Len() > opts.MaxPredatorSize {
			break
		}

		predator := work[p]
		folded := 0
		for i := range work {
			if i == p || work[i].Len() <= predator.Len() {
				continue
			}
			product, err := work[i].Multiply(predator)
			if err != nil {
				return nil, nil, err
			}
			if product.IsEmpty() {
				return nil, product, nil
			}
			work[i] = product
			folded++
			logStep(log, "predator fold", work)
		}
		if folded == 0 {
			// Nothing was larger than the predator; let clustering
			// finish the job.
			break
		}
		work = append(work[:p], work[p+1:]...)
		logStep(log, "predator retired", work)
	}

	if len(work) == 1 {
		return nil, work[0].Clone(), nil
	}

	return work, nil, nil
}

// reduceClusters repeatedly multiplies the pair of vectors with the
// highest variable-support Jaccard similarity until one remains. Ties
// break toward the smaller combined size, then the earlier pair in
// insertion order. Pairs whose estimated product exceeds MaxClusterSize
// are skipped while a cheaper pair exists; the cap is a heuristic, so
// when every pair exceeds it the smallest-product pair is taken anyway
// and the reduction still completes.
func reduceClusters(work []*state.Vector, opts *Options, log hclog.Logger) (*state.Vector, error) {
	supports := make([]*bitset.BitSet, len(work))
	for i, vec := range work {
		supports[i] = vec.Support()
	}

	for len(work) > 1 {
		i, j := bestPair(work, supports, opts.MaxClusterSize)

		product, err := work[i].Multiply(work[j])
		if err != nil {
			return nil, err
		}
		if product.IsEmpty() {
			return product, nil
		}

		// Replace the pair: the product takes slot i, slot j closes.
		work[i] = product
		supports[i].InPlaceUnion(supports[j])
		work = append(work[:j], work[j+1:]...)
		supports = append(supports[:j], supports[j+1:]...)
		logStep(log, "cluster merge", work)
	}

	return work[0].Clone(), nil
}

// bestPair picks the next pair to multiply: maximum Jaccard similarity
// of variable supports, ties toward smaller combined size, then the
// earlier pair. Pairs over the size cap lose to any pair under it; if
// every pair is over, the one with the smallest size product wins.
func bestPair(work []*state.Vector, supports []*bitset.BitSet, maxCluster int) (int, int) {
	type candidate struct {
		i, j     int
		jaccard  float64
		combined int
		estimate int
	}

	best := candidate{i: -1}
	better := func(a, b candidate) bool {
		aCapped := a.estimate > maxCluster
		bCapped := b.estimate > maxCluster
		if aCapped != bCapped {
			return !aCapped
		}
		if aCapped {
			// Both over the cap: cheapest product wins.
			return a.estimate < b.estimate
		}
		if a.jaccard != b.jaccard {
			return a.jaccard > b.jaccard
		}

		return a.combined < b.combined
	}

	for i := 0; i < len(work); i++ {
		for j := i + 1; j < len(work); j++ {
			cand := candidate{
				i:        i,
				j:        j,
				jaccard:  jaccard(supports[i], supports[j]),
				combined: work[i].Len() + work[j].Len(),
				estimate: work[i].Len() * work[j].Len(),
			}
			if best.i < 0 || better(cand, best) {
				best = cand
			}
		}
	}

	return best.i, best.j
}

// jaccard returns |a ∩ b| / |a ∪ b|, with 0 for two empty supports.
func jaccard(a, b *bitset.BitSet) float64 {
	union := a.UnionCardinality(b)
	if union == 0 {
		return 0
	}

	return float64(a.IntersectionCardinality(b)) / float64(union)
}

// smallest returns the index of the smallest vector (first on ties).
func smallest(work []*state.Vector) int {
	min := 0
	for i := 1; i < len(work); i++ {
		if work[i].Len() < work[min].Len() {
			min = i
		}
	}

	return min
}

// logStep emits one progress record: how many vectors remain and the
// largest among them.
func logStep(log hclog.Logger, stage string, work []*state.Vector) {
	if !log.IsDebug() {
		return
	}
	max := 0
	for _, vec := range work {
		if vec.Len() > max {
			max = vec.Len()
		}
	}
	log.Debug(stage, "remaining", len(work), "max_size", max)
}
