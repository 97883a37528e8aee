package integrity_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/integrity"
	"github.com/katalvlaran/graphprep/metrics"
	"github.com/katalvlaran/graphprep/subgraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// super builds a symmetric 6-cycle u0…u5 with labels x,y alternating.
func super(t *testing.T) *graphview.Graph {
	t.Helper()
	n := 6
	attrs := make([][]float64, n)
	labels := make([]int, n)
	ids := make([]string, n)
	var edges []graphview.Edge
	for i := 0; i < n; i++ {
		attrs[i] = []float64{float64(i) * 0.5, 1}
		labels[i] = i % 2
		ids[i] = "u" + string(rune('0'+i))
		edges = append(edges, graphview.Edge{From: i, To: (i + 1) % n})
	}
	g, err := graphview.New(graphview.Data{
		Attributes: attrs,
		Edges:      edges,
		Labels:     labels,
		VertexIDs:  ids,
		Classes:    map[string]int{"x": 0, "y": 1},
	})
	require.NoError(t, err)
	return g.MakeSymmetric()
}

func TestAssertIntegrity_DerivedViewsAgree(t *testing.T) {
	g := super(t)

	sub, err := g.SelectByMask(graphview.Mask{true, true, true, false, true, false})
	require.NoError(t, err)
	n, err := integrity.AssertIntegrity(g, sub)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	// label-restricted and compressed: ids change, names do not
	ys, _, err := subgraph.SelectByLabels(g, []int{1}, subgraph.WithConnected(false))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, ys.Labels())
	n, err = integrity.AssertIntegrity(g, ys)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// two siblings sharing a part of the graph
	n, err = integrity.AssertIntegrity(sub, ys, integrity.WithVertexSubset(false))
	require.NoError(t, err)
	require.Equal(t, 1, n) // u1 is the only shared vertex
}

func TestAssertIntegrity_AttributeMismatch(t *testing.T) {
	g := super(t)

	other, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{0.5, 1.001}},
		Labels:     []int{0},
		VertexIDs:  []string{"u1"},
		Classes:    map[string]int{"y": 0},
	})
	require.NoError(t, err)

	rec := metrics.NewRecorder(prometheus.NewRegistry())
	n, err := integrity.AssertIntegrity(g, other, integrity.WithRecorder(rec))
	require.ErrorIs(t, err, integrity.ErrIntegrityViolation)
	require.Contains(t, err.Error(), `"u1"`)
	require.Contains(t, err.Error(), integrity.CheckAttributes)
	require.Zero(t, n)
	require.Equal(t, 1.0, testutil.ToFloat64(rec.IntegrityViolations.WithLabelValues(integrity.CheckAttributes)))

	// within a looser tolerance the same pair passes
	n, err = integrity.AssertIntegrity(g, other, integrity.WithTolerance(1e-2, 0))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAssertIntegrity_LabelMismatch(t *testing.T) {
	g := super(t)
	other, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{1, 1}},
		Labels:     []int{0},
		VertexIDs:  []string{"u2"},
		Classes:    map[string]int{"y": 0}, // u2 is x in g
	})
	require.NoError(t, err)

	_, err = integrity.AssertIntegrity(g, other)
	require.ErrorIs(t, err, integrity.ErrIntegrityViolation)
	require.Contains(t, err.Error(), integrity.CheckLabel)
}

func TestAssertIntegrity_NeighborMismatch(t *testing.T) {
	g := super(t)
	// u0, u1, u2 with an extra u0–u2 edge that g does not have
	other, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{0, 1}, {0.5, 1}, {1, 1}},
		Labels:     []int{0, 1, 0},
		VertexIDs:  []string{"u0", "u1", "u2"},
		Edges:      []graphview.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
		Classes:    map[string]int{"x": 0, "y": 1},
	})
	require.NoError(t, err)

	_, err = integrity.AssertIntegrity(g, other)
	require.ErrorIs(t, err, integrity.ErrIntegrityViolation)
	require.Contains(t, err.Error(), integrity.CheckNeighbors)
	require.Contains(t, err.Error(), `"u0"`)
}

func TestAssertIntegrity_SubsetPreconditions(t *testing.T) {
	g := super(t)
	stranger, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{0, 1}},
		Labels:     []int{0},
		VertexIDs:  []string{"zz"},
		Classes:    map[string]int{"x": 0},
	})
	require.NoError(t, err)

	_, err = integrity.AssertIntegrity(g, stranger)
	require.ErrorIs(t, err, integrity.ErrIntegrityViolation)
	require.Contains(t, err.Error(), integrity.CheckVertexSubset)

	n, err := integrity.AssertIntegrity(g, stranger, integrity.WithVertexSubset(false))
	require.NoError(t, err)
	require.Zero(t, n)

	newLabel, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{0, 1}},
		Labels:     []int{0},
		VertexIDs:  []string{"u0"},
		Classes:    map[string]int{"x": 0, "w": 1},
	})
	require.NoError(t, err)
	_, err = integrity.AssertIntegrity(g, newLabel)
	require.ErrorIs(t, err, integrity.ErrIntegrityViolation)
	require.Contains(t, err.Error(), integrity.CheckLabelSubset)

	n, err = integrity.AssertIntegrity(g, newLabel, integrity.WithLabelSubset(false))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestVertexIntersection(t *testing.T) {
	g := super(t)
	sub, err := g.SelectByMask(graphview.Mask{false, true, false, true, false, true})
	require.NoError(t, err)
	a, b := integrity.VertexIntersection(g, sub)
	require.Equal(t, []int{1, 3, 5}, a)
	require.Equal(t, []int{0, 1, 2}, b)
}

func TestAssertIntegrity_Nil(t *testing.T) {
	_, err := integrity.AssertIntegrity(nil, super(t))
	require.ErrorIs(t, err, integrity.ErrGraphNil)
}
