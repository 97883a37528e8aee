package integrity

import (
	"errors"

	"github.com/katalvlaran/graphprep/metrics"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("integrity: graph is nil")

	// ErrIntegrityViolation is returned when two graphs disagree on a shared
	// vertex or a subset precondition fails.
	ErrIntegrityViolation = errors.New("integrity: violation")
)

// Check names reported in errors and metrics.
const (
	CheckVertexSubset = "vertex_subset"
	CheckLabelSubset  = "label_subset"
	CheckAttributes   = "attributes"
	CheckLabel        = "label"
	CheckNeighbors    = "neighbors"
)

// Default tolerances, matching the usual allclose defaults.
const (
	DefaultAbsTol = 1e-8
	DefaultRelTol = 1e-5
)

// Option configures AssertIntegrity.
type Option func(*Options)

// Options holds the parameters of AssertIntegrity.
type Options struct {
	// VertexSubset requires second's vertex ids ⊆ first's.
	VertexSubset bool

	// LabelSubset requires second's label names ⊆ first's.
	LabelSubset bool

	// AbsTol and RelTol bound attribute differences.
	AbsTol float64
	RelTol float64

	// Recorder receives counters; nil disables metrics.
	Recorder *metrics.Recorder
}

// DefaultOptions enables both subset checks with default tolerances.
func DefaultOptions() Options {
	return Options{
		VertexSubset: true,
		LabelSubset:  true,
		AbsTol:       DefaultAbsTol,
		RelTol:       DefaultRelTol,
	}
}

// WithVertexSubset toggles the vertex subset requirement.
func WithVertexSubset(on bool) Option {
	return func(o *Options) { o.VertexSubset = on }
}

// WithLabelSubset toggles the label subset requirement.
func WithLabelSubset(on bool) Option {
	return func(o *Options) { o.LabelSubset = on }
}

// WithTolerance overrides the absolute and relative attribute tolerances.
// Negative values are ignored.
func WithTolerance(abs, rel float64) Option {
	return func(o *Options) {
		if abs >= 0 {
			o.AbsTol = abs
		}
		if rel >= 0 {
			o.RelTol = rel
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}
