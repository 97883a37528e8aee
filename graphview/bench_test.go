package graphview_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphprep/graphview"
)

func randomGraph(b *testing.B, n, e int) *graphview.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	attrs := make([][]float64, n)
	labels := make([]int, n)
	for i := range attrs {
		attrs[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
		labels[i] = rng.Intn(4)
	}
	edges := make([]graphview.Edge, e)
	for i := range edges {
		edges[i] = graphview.Edge{From: rng.Intn(n), To: rng.Intn(n)}
	}
	g, err := graphview.New(graphview.Data{
		Attributes: attrs,
		Edges:      edges,
		Labels:     labels,
		Classes:    map[string]int{"a": 0, "b": 1, "c": 2, "d": 3},
	})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return g
}

// BenchmarkLargestConnectedComponent measures LCC extraction on a sparse
// random graph with 100k vertices and 150k edges.
// Complexity: O(N + E)
func BenchmarkLargestConnectedComponent(b *testing.B) {
	g := randomGraph(b, 100_000, 150_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.LargestConnectedComponent()
	}
}

// BenchmarkMakeSymmetric measures A ∪ Aᵀ on the same graph.
func BenchmarkMakeSymmetric(b *testing.B) {
	g := randomGraph(b, 100_000, 150_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.MakeSymmetric()
	}
}
