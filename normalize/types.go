package normalize

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphprep/metrics"
)

// Sentinel errors for normalization.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("normalize: graph is nil")

	// ErrInvalidConfiguration is returned when an invalid Option is supplied.
	ErrInvalidConfiguration = errors.New("normalize: invalid configuration")
)

// Option configures Normalize via functional arguments. An invalid Option
// is recorded and surfaced as ErrInvalidConfiguration when Normalize runs.
type Option func(*Options)

// Options holds the parameters of Normalize.
type Options struct {
	// MakeSymmetric adds the reverse of every edge before reducing.
	MakeSymmetric bool

	// MinClassCount removes classes with strictly fewer vertices.
	// 0 disables pruning.
	MinClassCount float64

	// Logger receives progress messages.
	Logger *slog.Logger

	// Recorder receives counters; nil disables metrics.
	Recorder *metrics.Recorder

	err error
}

// DefaultOptions returns Options with MakeSymmetric enabled, pruning
// disabled, slog.Default() as logger and no metrics.
func DefaultOptions() Options {
	return Options{
		MakeSymmetric: true,
		MinClassCount: 0,
		Logger:        slog.Default(),
	}
}

// WithMakeSymmetric toggles symmetrization before reduction.
func WithMakeSymmetric(on bool) Option {
	return func(o *Options) { o.MakeSymmetric = on }
}

// WithMinClassCount sets the pruning threshold.
//
//	c > 0:   prune classes with count < c
//	c == 0:  no pruning
//	c < 0 or NaN/Inf: invalid → ErrInvalidConfiguration
func WithMinClassCount(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			o.err = fmt.Errorf("%w: MinClassCount must be a finite value >= 0 (%v)", ErrInvalidConfiguration, c)
			return
		}
		o.MinClassCount = c
	}
}

// WithLogger sets the progress logger. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// Report describes a finished normalization.
type Report struct {
	// Iterations is the number of LCC + pruning rounds performed.
	Iterations int

	// InputVertices and OutputVertices are the vertex counts before and after.
	InputVertices  int
	OutputVertices int

	// PrunedClasses lists removed label names in removal order.
	PrunedClasses []string
}
