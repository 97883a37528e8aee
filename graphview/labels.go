// SPDX-License-Identifier: MIT

package graphview

import (
	"slices"

	"github.com/katalvlaran/graphprep/index"
)

// RemapLabels rewrites every class id through r and remaps the label index
// accordingly. Ids missing from r, or mapped to index.Undefined, become
// undefined and their names leave the index.
//
// Complexity: O(N·D + E + k).
func (g *Graph) RemapLabels(r index.Remapping) (*Graph, error) {
	classes, err := g.classes.Remap(r)
	if err != nil {
		return nil, err
	}
	return g.withLabels(r.Apply(g.labels), classes), nil
}

// CompressLabels maps the class ids present in the label vector onto
// 0..k-1 in ascending id order. Names of absent classes leave the index.
// The applied compression is returned alongside the new graph.
func (g *Graph) CompressLabels() (*Graph, index.Remapping, error) {
	r := index.Compression(g.labels)
	out, err := g.RemapLabels(r)
	if err != nil {
		return nil, nil, err
	}
	return out, r, nil
}

// AlignLabelsTo renumbers the classes of g so that every label name shared
// with target carries target's id; the remaining names take the smallest
// free ids. See index.AlignTo.
func (g *Graph) AlignLabelsTo(target index.LabelIndex) (*Graph, error) {
	return g.RemapLabels(index.AlignTo(g.classes, target))
}

// ClassCounts returns the number of vertices per class id. Undefined labels
// are not counted.
func (g *Graph) ClassCounts() map[int]int {
	out := make(map[int]int)
	for _, l := range g.labels {
		if l != index.Undefined {
			out[l]++
		}
	}
	return out
}

// LabelsIn returns the sorted names of the labels carried by the positions
// selected in mask. Names, not ids, stay comparable across compressions.
// A nil mask considers every vertex.
func (g *Graph) LabelsIn(mask Mask) ([]string, error) {
	if mask == nil {
		mask = NewMask(g.n, true)
	}
	if err := g.checkMask(mask); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for pos, sel := range mask {
		if !sel {
			continue
		}
		if name, ok := g.LabelName(pos); ok {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out, nil
}

// NumClasses returns one more than the largest class id among the positions
// selected in mask, 0 if none is labeled. A nil mask considers every vertex.
func (g *Graph) NumClasses(mask Mask) (int, error) {
	if mask == nil {
		mask = NewMask(g.n, true)
	}
	if err := g.checkMask(mask); err != nil {
		return 0, err
	}
	top := -1
	for pos, sel := range mask {
		if sel && g.labels[pos] > top {
			top = g.labels[pos]
		}
	}
	return top + 1, nil
}
