// SPDX-License-Identifier: MIT

package graphview

import "slices"

// buildCSR turns an unordered edge list into row pointers and sorted,
// de-duplicated column lists. Endpoints must already be validated.
//
// Complexity: O(n + E log d), d = max out-degree.
func buildCSR(n int, edges []Edge) (rowPtr, cols []int) {
	rowPtr = make([]int, n+1)
	for _, e := range edges {
		rowPtr[e.From+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	cols = make([]int, len(edges))
	fill := make([]int, n)
	copy(fill, rowPtr[:n])
	for _, e := range edges {
		cols[fill[e.From]] = e.To
		fill[e.From]++
	}

	return compactRows(n, rowPtr, cols)
}

// compactRows sorts every row and drops repeated columns, rewriting rowPtr
// and cols in place.
func compactRows(n int, rowPtr, cols []int) ([]int, []int) {
	w := 0
	start := 0
	for u := 0; u < n; u++ {
		end := rowPtr[u+1]
		row := cols[start:end]
		slices.Sort(row)
		rowStart := w
		for i, v := range row {
			if i > 0 && v == row[i-1] {
				continue
			}
			cols[w] = v
			w++
		}
		rowPtr[u] = rowStart
		start = end
	}
	rowPtr[n] = w

	return rowPtr, cols[:w:w]
}
