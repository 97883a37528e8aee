package graphview_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/stretchr/testify/require"
)

// twoIslands builds
//
//	v0 → v1 → v2      v3 → v4
//	          ↑              ↓
//	          v6             v5
//
// with labels a,a,b,b,c,c,a and attribute row i = [i, 10i].
func twoIslands(t testing.TB) *graphview.Graph {
	t.Helper()
	n := 7
	attrs := make([][]float64, n)
	for i := range attrs {
		attrs[i] = []float64{float64(i), float64(10 * i)}
	}
	g, err := graphview.New(graphview.Data{
		Attributes: attrs,
		Edges: []graphview.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 6, To: 2},
			{From: 3, To: 4}, {From: 4, To: 5},
			{From: 0, To: 1}, // duplicate collapses
		},
		Labels:    []int{0, 0, 1, 1, 2, 2, 0},
		VertexIDs: []string{"v0", "v1", "v2", "v3", "v4", "v5", "v6"},
		Classes:   map[string]int{"a": 0, "b": 1, "c": 2},
	})
	require.NoError(t, err)
	return g
}

func edgeSet(g *graphview.Graph) map[graphview.Edge]bool {
	out := make(map[graphview.Edge]bool)
	for _, e := range g.Edges() {
		out[e] = true
	}
	return out
}
