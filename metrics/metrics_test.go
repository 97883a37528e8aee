package metrics_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.Iteration()
	r.Iteration()
	r.Removed("lcc", 3)
	r.Removed("class", 0)
	r.Pruned(2)
	r.Vertices("normalized", 42)
	r.Checked(10)
	r.Violation("attributes")
	r.Split(3)

	require.Equal(t, 2.0, testutil.ToFloat64(r.NormalizeIterations))
	require.Equal(t, 3.0, testutil.ToFloat64(r.VerticesRemoved.WithLabelValues("lcc")))
	require.Equal(t, 2.0, testutil.ToFloat64(r.ClassesPruned))
	require.Equal(t, 42.0, testutil.ToFloat64(r.GraphVertices.WithLabelValues("normalized")))
	require.Equal(t, 10.0, testutil.ToFloat64(r.IntegrityChecked))
	require.Equal(t, 1.0, testutil.ToFloat64(r.IntegrityViolations.WithLabelValues("attributes")))
	require.Equal(t, 3.0, testutil.ToFloat64(r.SplitsCreated))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	require.NotPanics(t, func() {
		r.Iteration()
		r.Removed("lcc", 1)
		r.Pruned(1)
		r.Vertices("x", 1)
		r.Checked(1)
		r.Violation("labels")
		r.Split(1)
	})
}

func TestNewRecorder_SeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		metrics.NewRecorder(prometheus.NewRegistry())
		metrics.NewRecorder(prometheus.NewRegistry())
	})
}
