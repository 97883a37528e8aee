package index_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/index"
	"github.com/stretchr/testify/require"
)

func TestNewVertexIndex(t *testing.T) {
	vi, err := index.NewVertexIndex([]string{"d1", "d2", "d3"})
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d2", "d3"}, vi.IDs())

	pos, err := vi.Position("d3")
	require.NoError(t, err)
	require.Equal(t, 2, pos)

	_, err = vi.Position("missing")
	require.ErrorIs(t, err, index.ErrKeyNotFound)

	_, err = index.NewVertexIndex([]string{"a", "a"})
	require.ErrorIs(t, err, index.ErrDuplicateKey)
}

func TestVertexIndexFromMap_NotDense(t *testing.T) {
	_, err := index.VertexIndexFromMap(map[string]int{"a": 0, "b": 2})
	require.ErrorIs(t, err, index.ErrNotDense)

	vi, err := index.VertexIndexFromMap(map[string]int{"a": 1, "b": 0})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, vi.IDs())
}

func TestVertexIndex_Select(t *testing.T) {
	vi, _ := index.NewVertexIndex([]string{"a", "b", "c", "d", "e"})
	sub := vi.Select([]bool{false, true, false, true, true})
	require.Equal(t, []string{"b", "d", "e"}, sub.IDs())
	require.False(t, sub.Has("a"))

	id, err := sub.ID(1)
	require.NoError(t, err)
	require.Equal(t, "d", id)
}
