package pipeline

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/metrics"
	"github.com/katalvlaran/graphprep/normalize"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pipeline: graph is nil")

	// ErrConfigNil is returned if a nil configuration is passed.
	ErrConfigNil = errors.New("pipeline: config is nil")
)

// View is a graph plus the mask of vertices used for evaluation.
type View struct {
	Graph *graphview.Graph
	Mask  graphview.Mask
}

// Split holds the views derived for one seed.
type Split struct {
	Seed  int64
	Train View
	Val   View
	Test  View

	// Shared counts the vertices compared by each integrity check.
	Shared map[string]int
}

// Result is the outcome of Run.
type Result struct {
	// RunID identifies the run in logs and manifests.
	RunID uuid.UUID

	// Base is the normalized graph every view derives from.
	Base   *graphview.Graph
	Report *normalize.Report
	Splits []Split
}

// Option configures Run.
type Option func(*Options)

// Options holds the ambient dependencies of Run.
type Options struct {
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// DefaultOptions returns slog.Default() and no metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}
