package subgraph

import "github.com/katalvlaran/graphprep/index"

// Binary class ids produced by SplitIDOOD.
const (
	InDistribution    = 0
	OutOfDistribution = 1
)

// SplitIDOOD relabels labels into InDistribution for ids in idLabels and
// OutOfDistribution for ids in oodLabels. A nil oodLabels means every id not
// in idLabels. Positions matching neither become index.Undefined.
func SplitIDOOD(labels, idLabels, oodLabels []int) []int {
	id := make(map[int]bool, len(idLabels))
	for _, l := range idLabels {
		id[l] = true
	}
	var ood map[int]bool
	if oodLabels != nil {
		ood = make(map[int]bool, len(oodLabels))
		for _, l := range oodLabels {
			ood[l] = true
		}
	}

	out := make([]int, len(labels))
	for i, l := range labels {
		switch {
		case id[l]:
			out[i] = InDistribution
		case ood == nil && l != index.Undefined, ood[l]:
			out[i] = OutOfDistribution
		default:
			out[i] = index.Undefined
		}
	}
	return out
}
