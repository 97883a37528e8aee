// SPDX-License-Identifier: MIT

package graphview

// ConnectedComponents labels every position with its weakly connected
// component (edge direction ignored). Components are numbered 0, 1, … in the
// order of their smallest position. Returns the per-position component ids
// and the size of each component.
//
// Time:   O(N + E).
// Memory: O(N + E) for the reverse adjacency and the BFS queue.
func (g *Graph) ConnectedComponents() (comp []int, sizes []int) {
	inPtr, inCols := g.reverseCSR()

	comp = make([]int, g.n)
	for i := range comp {
		comp[i] = -1
	}
	queue := make([]int, 0, g.n)

	for start := 0; start < g.n; start++ {
		if comp[start] >= 0 {
			continue
		}
		id := len(sizes)
		// BFS to collect component
		queue = append(queue[:0], start)
		comp[start] = id
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
				if comp[v] < 0 {
					comp[v] = id
					queue = append(queue, v)
				}
			}
			for _, v := range inCols[inPtr[u]:inPtr[u+1]] {
				if comp[v] < 0 {
					comp[v] = id
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, len(queue))
	}

	return comp, sizes
}

// LargestConnectedComponent returns the subgraph induced by the largest
// weakly connected component together with the mask of its positions in g.
// Ties go to the component with the smallest position. An empty graph yields
// an empty graph and an empty mask.
//
// Complexity: O(N·D + E).
func (g *Graph) LargestConnectedComponent() (*Graph, Mask, error) {
	comp, sizes := g.ConnectedComponents()

	best := -1
	for id, size := range sizes {
		if best < 0 || size > sizes[best] {
			best = id
		}
	}

	mask := make(Mask, g.n)
	for pos, c := range comp {
		mask[pos] = c == best
	}
	sub, err := g.SelectByMask(mask)
	if err != nil {
		return nil, nil, err
	}
	return sub, mask, nil
}

// reverseCSR builds in-neighbor lists: in-neighbors of v are
// inCols[inPtr[v]:inPtr[v+1]].
func (g *Graph) reverseCSR() (inPtr, inCols []int) {
	inPtr = make([]int, g.n+1)
	for _, v := range g.cols {
		inPtr[v+1]++
	}
	for i := 0; i < g.n; i++ {
		inPtr[i+1] += inPtr[i]
	}
	inCols = make([]int, len(g.cols))
	fill := make([]int, g.n)
	copy(fill, inPtr[:g.n])
	for u := 0; u < g.n; u++ {
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			inCols[fill[v]] = u
			fill[v]++
		}
	}
	return inPtr, inCols
}
