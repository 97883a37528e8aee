package subgraph_test

import (
	"testing"

	"github.com/katalvlaran/graphprep/index"
	"github.com/katalvlaran/graphprep/subgraph"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func labelIndex(t *testing.T) index.LabelIndex {
	t.Helper()
	li, err := index.NewLabelIndex(map[string]int{"cs": 0, "math": 2, "bio": 5})
	require.NoError(t, err)
	return li
}

func TestLabelSelector_Resolve(t *testing.T) {
	li := labelIndex(t)

	ids, err := subgraph.All().Resolve(li)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 5}, ids)

	ids, err = subgraph.Names("bio", "unknown", "cs").Resolve(li)
	require.NoError(t, err)
	require.Equal(t, []int{5, index.Undefined, 0}, ids)
}

func TestLabelSelector_YAML(t *testing.T) {
	li := labelIndex(t)

	var doc struct {
		Train subgraph.LabelSelector `yaml:"train"`
		Val   subgraph.LabelSelector `yaml:"val"`
		Old   subgraph.LabelSelector `yaml:"old"`
	}
	src := `
train: [math, "cs"]
val: all
old: [0, 1]
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	ids, err := doc.Train.Resolve(li)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, ids)

	require.True(t, doc.Val.IsAll())

	_, err = doc.Old.Resolve(li)
	require.ErrorIs(t, err, subgraph.ErrUnsupported)

	var bad struct {
		L subgraph.LabelSelector `yaml:"l"`
	}
	err = yaml.Unmarshal([]byte("l: some"), &bad)
	require.ErrorIs(t, err, subgraph.ErrUnsupported)
}

func TestLabelSelector_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]subgraph.LabelSelector{"x": subgraph.All()})
	require.NoError(t, err)
	require.Equal(t, "x: all\n", string(out))

	out, err = yaml.Marshal(map[string]subgraph.LabelSelector{"x": subgraph.Names("a", "b")})
	require.NoError(t, err)
	require.Equal(t, "x:\n    - a\n    - b\n", string(out))
}

func TestSplitIDOOD(t *testing.T) {
	labels := []int{0, 1, 2, 3, index.Undefined}
	require.Equal(t, []int{0, 0, 1, 1, index.Undefined}, subgraph.SplitIDOOD(labels, []int{0, 1}, nil))
	require.Equal(t, []int{0, index.Undefined, 1, index.Undefined, index.Undefined}, subgraph.SplitIDOOD(labels, []int{0}, []int{2}))
}
