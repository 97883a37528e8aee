package split

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/graphprep/graphview"
)

// SampleFromMask draws k positions uniformly from those selected by mask.
// It fails with ErrSamplingExhausted, before consuming rng, when the mask
// selects fewer than k positions.
func SampleFromMask(mask graphview.Mask, k int, rng *rand.Rand) (graphview.Mask, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: sample size %d", ErrInvalidConfiguration, k)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidConfiguration)
	}
	idxs := mask.Indices()
	if len(idxs) < k {
		return nil, fmt.Errorf("%w: cannot sample %d vertices from a mask with %d", ErrSamplingExhausted, k, len(idxs))
	}
	shuffleInts(idxs, rng)
	out := make(graphview.Mask, len(mask))
	for _, p := range idxs[:k] {
		out[p] = true
	}
	return out, nil
}

// SampleUniformly draws k positions per class in classes, restricted to mask.
// Classes are visited in ascending order. Availability of every class is
// checked before any sample is drawn.
func SampleUniformly(labels []int, classes []int, k int, mask graphview.Mask, rng *rand.Rand) (graphview.Mask, error) {
	if len(mask) != len(labels) {
		return nil, fmt.Errorf("%w: mask has %d entries, labels %d", ErrInvalidConfiguration, len(mask), len(labels))
	}
	cs := slices.Clone(classes)
	slices.Sort(cs)
	cs = slices.Compact(cs)

	per := make([]graphview.Mask, len(cs))
	for i, c := range cs {
		m, err := mask.And(graphview.LabelMask(labels, []int{c}))
		if err != nil {
			return nil, err
		}
		if n := m.Count(); n < k {
			return nil, fmt.Errorf("%w: class %d has %d vertices, need %d", ErrSamplingExhausted, c, n, k)
		}
		per[i] = m
	}

	out := make(graphview.Mask, len(mask))
	for _, m := range per {
		s, err := SampleFromMask(m, k, rng)
		if err != nil {
			return nil, err
		}
		for i, on := range s {
			out[i] = out[i] || on
		}
	}
	if got, want := out.Count(), k*len(cs); got != want {
		return nil, fmt.Errorf("split: sampled %d vertices, want %d", got, want)
	}
	return out, nil
}
