// SPDX-License-Identifier: MIT

package graphview

import "slices"

// MakeSymmetric returns a Graph whose edge set is E ∪ Eᵀ. Self-loops are kept
// once, duplicate edges collapse, and applying it twice equals applying it
// once.
//
// Complexity: O(N·D + E log d).
func (g *Graph) MakeSymmetric() *Graph {
	edges := make([]Edge, 0, 2*len(g.cols))
	for u := 0; u < g.n; u++ {
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			edges = append(edges, Edge{From: u, To: v})
			if u != v {
				edges = append(edges, Edge{From: v, To: u})
			}
		}
	}
	rowPtr, cols := buildCSR(g.n, edges)

	return &Graph{
		n:        g.n,
		dim:      g.dim,
		attrs:    slices.Clone(g.attrs),
		rowPtr:   rowPtr,
		cols:     cols,
		labels:   slices.Clone(g.labels),
		vertices: g.vertices,
		classes:  g.classes,
	}
}

// IsSymmetric reports whether every edge u→v has its reverse v→u.
func (g *Graph) IsSymmetric() bool {
	for u := 0; u < g.n; u++ {
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			if !g.HasEdge(v, u) {
				return false
			}
		}
	}
	return true
}
