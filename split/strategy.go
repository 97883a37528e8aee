package split

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphprep/graphview"
)

// Strategy names a way of producing train/validation/test masks.
type Strategy string

const (
	// Stratified splits by fractions per label.
	Stratified Strategy = "stratified"
	// Uniform samples a fixed count per class for train and validation.
	Uniform Strategy = "uniform"
	// FixedTest shares a test portion across seeds. Not implemented.
	FixedTest Strategy = "fixed_test"
)

// ParseStrategy maps a name to a Strategy. Unknown names and FixedTest fail
// with ErrUnsupported.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case Stratified, Uniform:
		return s, nil
	case FixedTest:
		return "", fmt.Errorf("%w: strategy %q is not implemented", ErrUnsupported, name)
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", ErrUnsupported, name)
	}
}

// FixedTestPortions describes a split whose test part is partly shared
// between seeds.
type FixedTestPortions struct {
	Train, Val, TestFixed, TestPerSeed float64
}

// FixedTestSplit would split with a test portion fixed across seeds. It
// always fails with ErrUnsupported.
func FixedTestSplit(_ context.Context, _ []int, _ []int64, _ FixedTestPortions) ([][]graphview.Mask, graphview.Mask, error) {
	return nil, nil, fmt.Errorf("%w: %s split", ErrUnsupported, FixedTest)
}
