package graphview_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/stretchr/testify/require"
)

func TestSelectByMask_ConservesMaskedRows(t *testing.T) {
	g := twoIslands(t)
	mask := graphview.Mask{true, true, false, true, true, false, true}

	sub, err := g.SelectByMask(mask)
	require.NoError(t, err)
	require.Equal(t, mask.Count(), sub.NumVertices())

	for newPos, oldPos := range mask.Indices() {
		require.Equal(t, g.Row(oldPos), sub.Row(newPos))
		require.Equal(t, g.Label(oldPos), sub.Label(newPos))
	}
	require.Equal(t, []string{"v0", "v1", "v3", "v4", "v6"}, sub.Vertices().IDs())

	// v0→v1 and v3→v4 survive, edges touching v2 or v5 are gone.
	require.Equal(t, []graphview.Edge{{From: 0, To: 1}, {From: 2, To: 3}}, sub.Edges())
	require.True(t, sub.Classes().Equal(g.Classes().Bijection))
}

func TestSelectByMask_WrongLength(t *testing.T) {
	g := twoIslands(t)
	_, err := g.SelectByMask(graphview.Mask{true})
	require.ErrorIs(t, err, graphview.ErrShapeMismatch)
}

func TestSelectByMask_EmptyAndFull(t *testing.T) {
	g := twoIslands(t)

	empty, err := g.SelectByMask(graphview.NewMask(g.NumVertices(), false))
	require.NoError(t, err)
	require.Equal(t, 0, empty.NumVertices())
	require.Equal(t, 0, empty.NumEdges())
	require.Equal(t, g.Dim(), empty.Dim())
	require.Nil(t, empty.AttributeMatrix())

	full, err := g.SelectByMask(graphview.NewMask(g.NumVertices(), true))
	require.NoError(t, err)
	require.Equal(t, g.Edges(), full.Edges())
	require.Equal(t, g.Vertices().IDs(), full.Vertices().IDs())
}

func TestMask_RestrictExpand(t *testing.T) {
	outer := graphview.Mask{true, false, true, true, false}
	inner := graphview.Mask{false, true, true}

	expanded, err := outer.Expand(inner)
	require.NoError(t, err)
	require.Equal(t, graphview.Mask{false, false, true, true, false}, expanded)

	back, err := expanded.Restrict(outer)
	require.NoError(t, err)
	require.Equal(t, inner, back)

	_, err = outer.Expand(graphview.Mask{true})
	require.ErrorIs(t, err, graphview.ErrShapeMismatch)
}

func TestMask_FromVerticesRoundTrip(t *testing.T) {
	g := twoIslands(t)
	m, err := graphview.MaskFromVertices([]string{"v5", "v1"}, g.Vertices(), -1)
	require.NoError(t, err)
	require.Equal(t, graphview.Mask{false, true, false, false, false, true, false}, m)
	require.Equal(t, []string{"v1", "v5"}, graphview.VerticesFromMask(m, g.Vertices()))

	_, err = graphview.MaskFromVertices([]string{"nope"}, g.Vertices(), -1)
	require.Error(t, err)
}

func TestLabelMask(t *testing.T) {
	m := graphview.LabelMask([]int{0, 2, 1, 2, -1}, []int{2, -1})
	require.Equal(t, graphview.Mask{false, true, false, true, true}, m)
}
