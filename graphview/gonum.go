// SPDX-License-Identifier: MIT

package graphview

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum exports the topology of g as an undirected gonum graph whose node
// ids are positions. Edge direction is dropped and self-loops are skipped,
// since simple.UndirectedGraph does not hold them. Every position becomes a
// node, isolated ones included.
//
// Complexity: O(N + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for pos := 0; pos < g.n; pos++ {
		out.AddNode(simple.Node(int64(pos)))
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			if u == v {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
		}
	}
	return out
}
