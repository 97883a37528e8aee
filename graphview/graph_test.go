package graphview_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/index"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	classes := map[string]int{"a": 0}

	_, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{1}, {2}},
		Labels:     []int{0},
		Classes:    classes,
	})
	require.ErrorIs(t, err, graphview.ErrShapeMismatch)

	_, err = graphview.New(graphview.Data{
		Attributes: [][]float64{{1, 2}, {3}},
		Labels:     []int{0, 0},
		Classes:    classes,
	})
	require.ErrorIs(t, err, graphview.ErrShapeMismatch)

	_, err = graphview.New(graphview.Data{
		Attributes: [][]float64{{1}, {2}},
		Labels:     []int{0, 0},
		Edges:      []graphview.Edge{{From: 0, To: 2}},
		Classes:    classes,
	})
	require.ErrorIs(t, err, graphview.ErrShapeMismatch)

	_, err = graphview.New(graphview.Data{
		Attributes: [][]float64{{1}, {2}},
		Labels:     []int{0, 4},
		Classes:    classes,
	})
	require.ErrorIs(t, err, graphview.ErrUnknownLabel)

	_, err = graphview.New(graphview.Data{
		Attributes: [][]float64{{1}, {2}},
		Labels:     []int{0, 0},
		VertexIDs:  []string{"x", "x"},
		Classes:    classes,
	})
	require.ErrorIs(t, err, index.ErrDuplicateKey)
}

func TestNew_DefaultIDsAndCanonicalEdges(t *testing.T) {
	g, err := graphview.New(graphview.Data{
		Attributes: [][]float64{{0}, {1}, {2}},
		Labels:     []int{index.Undefined, 0, 0},
		Edges:      []graphview.Edge{{From: 2, To: 0}, {From: 0, To: 2}, {From: 0, To: 1}, {From: 0, To: 2}},
		Classes:    map[string]int{"only": 0},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, g.Vertices().IDs())
	require.Equal(t, []graphview.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 2, To: 0}}, g.Edges())
	require.Equal(t, 3, g.NumEdges())

	_, ok := g.LabelName(0)
	require.False(t, ok)
	name, ok := g.LabelName(1)
	require.True(t, ok)
	require.Equal(t, "only", name)
}

func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g := twoIslands(t)

	row := g.Row(3)
	row[0] = 999
	require.Equal(t, []float64{3, 30}, g.Row(3))

	labels := g.Labels()
	labels[0] = 2
	require.Equal(t, 0, g.Label(0))

	nb := g.Neighbors(0)
	nb[0] = 5
	require.Equal(t, []int{1}, g.Neighbors(0))

	m := g.AttributeMatrix()
	m.Set(0, 0, -1)
	require.Equal(t, 0.0, g.Row(0)[0])
}
