package subgraph_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/subgraph"
	"github.com/stretchr/testify/require"
)

// mixed builds
//
//	p0(a) ─ p1(b) ─ p2(a) ─ p3(c) ─ p4(a)      p5(c) ─ p6(c)
//
// Selecting {a, c} cuts p1 out, splitting a/c into {p0}, {p2,p3,p4}, {p5,p6}.
func mixed(t *testing.T) *graphview.Graph {
	t.Helper()
	attrs := make([][]float64, 7)
	for i := range attrs {
		attrs[i] = []float64{float64(i), -float64(i)}
	}
	g, err := graphview.New(graphview.Data{
		Attributes: attrs,
		Edges: []graphview.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 5, To: 6},
		},
		Labels:    []int{0, 1, 0, 2, 0, 2, 2},
		VertexIDs: []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6"},
		Classes:   map[string]int{"a": 0, "b": 1, "c": 2},
	})
	require.NoError(t, err)
	return g.MakeSymmetric()
}

func TestSelectByLabels_ConnectedCompressed(t *testing.T) {
	g := mixed(t)
	sub, mask, err := subgraph.SelectByLabels(g, []int{0, 2})
	require.NoError(t, err)

	// mask is label-mask ∧ LCC, against g's positions
	require.Equal(t, graphview.Mask{false, false, true, true, true, false, false}, mask)
	require.Equal(t, []string{"p2", "p3", "p4"}, sub.Vertices().IDs())
	require.Equal(t, []int{0, 1, 0}, sub.Labels())
	require.Equal(t, map[string]int{"a": 0, "c": 1}, sub.Classes().Map())

	// attributes of sub equal g's rows under mask
	for newPos, oldPos := range mask.Indices() {
		require.Equal(t, g.Row(oldPos), sub.Row(newPos))
	}
}

func TestSelectByLabels_NotConnected(t *testing.T) {
	g := mixed(t)
	sub, mask, err := subgraph.SelectByLabels(g, []int{0, 2}, subgraph.WithConnected(false))
	require.NoError(t, err)
	require.Equal(t, graphview.Mask{true, false, true, true, true, true, true}, mask)
	require.Equal(t, 6, sub.NumVertices())
}

func TestSelectByLabels_KeepIDs(t *testing.T) {
	g := mixed(t)
	sub, _, err := subgraph.SelectByLabels(g, []int{2}, subgraph.WithCompressLabels(false))
	require.NoError(t, err)
	// {p3} and {p5,p6}: the pair wins
	require.Equal(t, []string{"p5", "p6"}, sub.Vertices().IDs())
	require.Equal(t, []int{2, 2}, sub.Labels())
	require.Equal(t, g.Classes().Map(), sub.Classes().Map())
}

func TestSelectByLabels_NoMatch(t *testing.T) {
	g := mixed(t)
	sub, mask, err := subgraph.SelectByLabels(g, []int{-1})
	require.NoError(t, err)
	require.Equal(t, 0, sub.NumVertices())
	require.Equal(t, 0, mask.Count())
	require.Len(t, mask, g.NumVertices())
}

func TestSelectByLabels_NilGraph(t *testing.T) {
	_, _, err := subgraph.SelectByLabels(nil, []int{0})
	require.ErrorIs(t, err, subgraph.ErrGraphNil)
}
