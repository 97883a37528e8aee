package split

import "errors"

var (
	// ErrInvalidConfiguration is returned for malformed sizes or shape
	// mismatches between masks and label vectors.
	ErrInvalidConfiguration = errors.New("split: invalid configuration")

	// ErrSamplingExhausted is returned when more samples are requested than
	// the mask offers.
	ErrSamplingExhausted = errors.New("split: sampling exhausted")

	// ErrUnsupported is returned for split strategies that are not implemented.
	ErrUnsupported = errors.New("split: unsupported")
)
