package split

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/graphprep/graphview"
	"golang.org/x/sync/errgroup"
)

// SizeTolerance is the allowed deviation of sum(sizes) from 1.
const SizeTolerance = 1e-6

// ValidateSizes checks that sizes is a non-empty list of non-negative,
// finite fractions summing to 1 within SizeTolerance.
func ValidateSizes(sizes []float64) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfiguration)
	}
	var sum float64
	for i, s := range sizes {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: size %d is %v", ErrInvalidConfiguration, i, s)
		}
		sum += s
	}
	if math.Abs(sum-1) > SizeTolerance {
		return fmt.Errorf("%w: sizes sum to %v, want 1", ErrInvalidConfiguration, sum)
	}
	return nil
}

// endpoints returns the cumulative fractions, capped at 1, with the last
// forced to 1. Sums within SizeTolerance above 1 would otherwise cut past
// the end of a class.
func endpoints(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	var acc float64
	for i, s := range sizes {
		acc += s
		out[i] = min(acc, 1)
	}
	out[len(out)-1] = 1
	return out
}

// SplitFromMask partitions the positions selected by mask into len(sizes)
// sets, stratified by label.
//
// Label values are processed in ascending order. For each, the masked
// positions carrying it are shuffled with rng and cut at
// floor(count * cumulative fraction). Positions outside mask are never
// assigned and every masked position is assigned exactly once.
//
// Complexity: O(N log N) time, O(N·k) space.
func SplitFromMask(mask graphview.Mask, labels []int, sizes []float64, rng *rand.Rand) (*Assignment, error) {
	if len(mask) != len(labels) {
		return nil, fmt.Errorf("%w: mask has %d entries, labels %d", ErrInvalidConfiguration, len(mask), len(labels))
	}
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidConfiguration)
	}

	byLabel := make(map[int][]int)
	for i, on := range mask {
		if on {
			byLabel[labels[i]] = append(byLabel[labels[i]], i)
		}
	}
	keys := make([]int, 0, len(byLabel))
	for l := range byLabel {
		keys = append(keys, l)
	}
	slices.Sort(keys)

	ends := endpoints(sizes)
	out := newAssignment(len(mask), len(sizes))
	for _, l := range keys {
		idxs := byLabel[l]
		shuffleInts(idxs, rng)
		start := 0
		for s, e := range ends {
			end := min(int(float64(len(idxs))*e), len(idxs))
			for _, p := range idxs[start:end] {
				out.set(p, s)
			}
			start = end
		}
	}

	if err := checkAssignment(out, mask); err != nil {
		return nil, err
	}
	return out, nil
}

// checkAssignment verifies exclusivity and completeness against mask.
func checkAssignment(a *Assignment, mask graphview.Mask) error {
	for i, on := range mask {
		hits := 0
		for s := 0; s < a.k; s++ {
			if a.At(i, s) {
				hits++
			}
		}
		switch {
		case !on && hits != 0:
			return fmt.Errorf("split: position %d outside mask was assigned", i)
		case on && hits != 1:
			return fmt.Errorf("split: position %d assigned to %d sets", i, hits)
		}
	}
	return nil
}

// StratifiedSplit splits all N positions once per seed. The result is indexed
// [set][seed]; each seed draws from its own NewRNG(seed), and seeds run
// concurrently.
func StratifiedSplit(ctx context.Context, labels []int, seeds []int64, sizes []float64) ([][]graphview.Mask, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	out := make([][]graphview.Mask, len(sizes))
	for s := range out {
		out[s] = make([]graphview.Mask, len(seeds))
	}

	all := graphview.NewMask(len(labels), true)
	g, ctx := errgroup.WithContext(ctx)
	for j, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := SplitFromMask(all, labels, sizes, NewRNG(seed))
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			for s := range sizes {
				out[s][j] = a.Column(s)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
