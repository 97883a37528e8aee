// Package metrics exposes Prometheus collectors for dataset preparation runs.
//
// A Recorder is bound to a prometheus.Registerer supplied by the caller, so
// several Recorders (e.g. one per test) never collide in a global registry.
// Every method is safe on a nil *Recorder and then does nothing, letting
// library code record unconditionally.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "graphprep"

// Recorder groups the collectors updated by normalize, integrity and split.
type Recorder struct {
	// NormalizeIterations counts fixed-point iterations of Normalize.
	NormalizeIterations prometheus.Counter

	// VerticesRemoved counts vertices dropped by normalization, by reason
	// ("lcc" or "class").
	VerticesRemoved *prometheus.CounterVec

	// ClassesPruned counts classes removed for being under-represented.
	ClassesPruned prometheus.Counter

	// GraphVertices tracks the vertex count of the last graph seen per stage.
	GraphVertices *prometheus.GaugeVec

	// IntegrityChecked counts vertices that passed an integrity check.
	IntegrityChecked prometheus.Counter

	// IntegrityViolations counts failed integrity checks, by check kind.
	IntegrityViolations *prometheus.CounterVec

	// SplitsCreated counts split assignments produced.
	SplitsCreated prometheus.Counter
}

// NewRecorder creates and registers all collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		NormalizeIterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "normalize_iterations_total",
			Help:      "Fixed-point iterations performed by graph normalization.",
		}),
		VerticesRemoved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "normalize_vertices_removed_total",
			Help:      "Vertices removed during normalization.",
		}, []string{"reason"}),
		ClassesPruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "normalize_classes_pruned_total",
			Help:      "Classes removed for having fewer vertices than the minimum.",
		}),
		GraphVertices: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count of the most recent graph per stage.",
		}, []string{"stage"}),
		IntegrityChecked: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "integrity_vertices_checked_total",
			Help:      "Shared vertices that passed cross-graph integrity checks.",
		}),
		IntegrityViolations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "integrity_violations_total",
			Help:      "Integrity checks that failed, by check.",
		}, []string{"check"}),
		SplitsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "splits_created_total",
			Help:      "Split assignments produced.",
		}),
	}
}

// Iteration records one normalization iteration.
func (r *Recorder) Iteration() {
	if r == nil {
		return
	}
	r.NormalizeIterations.Inc()
}

// Removed records n vertices dropped for reason.
func (r *Recorder) Removed(reason string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.VerticesRemoved.WithLabelValues(reason).Add(float64(n))
}

// Pruned records n pruned classes.
func (r *Recorder) Pruned(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.ClassesPruned.Add(float64(n))
}

// Vertices sets the vertex gauge of stage.
func (r *Recorder) Vertices(stage string, n int) {
	if r == nil {
		return
	}
	r.GraphVertices.WithLabelValues(stage).Set(float64(n))
}

// Checked records n vertices that passed integrity checks.
func (r *Recorder) Checked(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.IntegrityChecked.Add(float64(n))
}

// Violation records a failed integrity check.
func (r *Recorder) Violation(check string) {
	if r == nil {
		return
	}
	r.IntegrityViolations.WithLabelValues(check).Inc()
}

// Split records n produced split assignments.
func (r *Recorder) Split(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.SplitsCreated.Add(float64(n))
}
