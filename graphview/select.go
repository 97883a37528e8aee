// SPDX-License-Identifier: MIT

// File: select.go
// Role: Non-mutating induced subgraphs selected by a position mask.
// Determinism:
//   - Kept vertices are renumbered in ascending old-position order.
//   - Edge order follows the canonical (From, To) order of the source.
// AI-HINT (file):
//   - SelectByMask keeps a vertex iff mask[pos]; an edge iff both endpoints are kept.
//   - Labels keep their ids; the label index is copied untouched.

package graphview

import (
	"slices"

	"github.com/katalvlaran/graphprep/index"
)

// SelectByMask returns the subgraph induced by the positions selected in
// mask. Attribute rows and labels are filtered in position order, edges with
// both endpoints selected are kept and renumbered, and the vertex index is
// rebuilt over the survivors. A mask of the wrong length fails with
// ErrShapeMismatch. The receiver is not mutated.
//
// Complexity: O(N·D + E).
func (g *Graph) SelectByMask(mask Mask) (*Graph, error) {
	if err := g.checkMask(mask); err != nil {
		return nil, err
	}

	// Old position → new position, -1 when dropped.
	remap := make([]int, g.n)
	kept := 0
	for pos, keep := range mask {
		if keep {
			remap[pos] = kept
			kept++
		} else {
			remap[pos] = -1
		}
	}

	out := &Graph{
		n:        kept,
		dim:      g.dim,
		attrs:    make([]float64, 0, kept*g.dim),
		rowPtr:   make([]int, kept+1),
		labels:   make([]int, 0, kept),
		vertices: g.vertices.Select(mask),
		classes:  g.classes,
	}

	cols := make([]int, 0, len(g.cols))
	var u, nu int
	for u = 0; u < g.n; u++ {
		nu = remap[u]
		if nu < 0 {
			continue
		}
		out.attrs = append(out.attrs, g.row(u)...)
		out.labels = append(out.labels, g.labels[u])
		// Rows stay sorted: remap is monotone on kept positions.
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			if remap[v] >= 0 {
				cols = append(cols, remap[v])
			}
		}
		out.rowPtr[nu+1] = len(cols)
	}
	out.cols = cols[:len(cols):len(cols)]

	return out, nil
}

// withLabels returns a deep copy of g carrying new labels and classes.
func (g *Graph) withLabels(labels []int, classes index.LabelIndex) *Graph {
	out := &Graph{
		n:        g.n,
		dim:      g.dim,
		attrs:    slices.Clone(g.attrs),
		rowPtr:   slices.Clone(g.rowPtr),
		cols:     slices.Clone(g.cols),
		labels:   labels,
		vertices: g.vertices,
		classes:  classes,
	}
	return out
}
