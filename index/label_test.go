package index_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/index"
	"github.com/stretchr/testify/require"
)

func TestAlignTo_SharedLabelsTakeTargetIDs(t *testing.T) {
	base, err := index.NewLabelIndex(map[string]int{"A": 0, "B": 1, "C": 2})
	require.NoError(t, err)
	target, err := index.NewLabelIndex(map[string]int{"B": 0, "C": 5})
	require.NoError(t, err)

	r := index.AlignTo(base, target)
	require.Equal(t, index.Remapping{1: 0, 2: 5, 0: 1}, r)

	aligned, err := base.Remap(r)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 1, "B": 0, "C": 5}, aligned.Map())
}

func TestAlignTo_FillsGapsInAscendingOrder(t *testing.T) {
	base, _ := index.LabelIndexFromNames([]string{"p", "q", "r", "s"})
	target, _ := index.NewLabelIndex(map[string]int{"s": 1, "q": 3, "unused": 0})

	r := index.AlignTo(base, target)
	// forced: q(1)→3, s(3)→1; free ids after {1,3}: 0, 2
	require.Equal(t, index.Remapping{0: 0, 1: 3, 2: 2, 3: 1}, r)

	seen := map[int]bool{}
	for _, v := range r {
		require.False(t, seen[v], "id %d assigned twice", v)
		seen[v] = true
	}
}

func TestAlignTo_NoSharedLabels(t *testing.T) {
	base, _ := index.LabelIndexFromNames([]string{"a", "b"})
	target, _ := index.LabelIndexFromNames([]string{"x"})
	require.Equal(t, index.Remapping{0: 0, 1: 1}, index.AlignTo(base, target))
}

func TestCompression(t *testing.T) {
	r := index.Compression([]int{4, 1, index.Undefined, 3, 0, 4})
	require.Equal(t, index.Remapping{0: 0, 1: 1, 3: 2, 4: 3}, r)
	require.Equal(t, []int{3, 1, index.Undefined, 2, 0, 3}, r.Apply([]int{4, 1, index.Undefined, 3, 0, 4}))
}

func TestLabelIndex_Remap(t *testing.T) {
	li, _ := index.LabelIndexFromNames([]string{"a", "b", "c"})

	out, err := li.Remap(index.Remapping{0: 1, 2: index.Undefined, 1: 0})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, out.Names())

	_, err = li.Remap(index.Remapping{0: 1, 1: 1})
	require.ErrorIs(t, err, index.ErrDuplicateKey)
}

func TestNewLabelIndex_NegativeID(t *testing.T) {
	_, err := index.NewLabelIndex(map[string]int{"a": -1})
	require.ErrorIs(t, err, index.ErrNegativeID)
}
