// SPDX-License-Identifier: MIT

package graphview

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary renders a human-readable description of g restricted to mask.
// Every line starts with prefix. A nil mask selects all vertices.
//
// The "vertex hash" lines fold every attribute with a position-dependent
// cosine weight into one number, so two summaries of the same data agree
// and a reordered or altered attribute matrix almost surely does not.
func (g *Graph) Summary(mask Mask, prefix string) (string, error) {
	if mask == nil {
		mask = NewMask(g.n, true)
	}
	if err := g.checkMask(mask); err != nil {
		return "", err
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		b.WriteString(prefix)
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	inMask, err := g.LabelsIn(mask)
	if err != nil {
		return "", err
	}
	all, _ := g.LabelsIn(nil)

	line("Number of Vertices : %d", g.n)
	line("Number of Features : %d", g.dim)
	line("Number of Vertices in Mask : %d", mask.Count())
	line("Number of Labels : %d", len(all))
	line("Number of Labels in Mask : %d", len(inMask))
	line("Number of Edges : %d", len(g.cols))

	hash := g.vertexHash()
	var hashMask []float64
	for pos, sel := range mask {
		if sel {
			hashMask = append(hashMask, hash[pos*g.dim:(pos+1)*g.dim]...)
		}
	}
	line("Vertex hash in mask: %g", meanOrNaN(hashMask))
	line("Vertex hash graph: %g", meanOrNaN(hash))
	if len(g.attrs) > 0 {
		line("Feature range %g - %g", floats.Min(g.attrs), floats.Max(g.attrs))
	} else {
		line("Feature range n/a")
	}

	line("Classes: (in_mask / total) ")
	total := g.ClassCounts()
	for _, e := range g.classes.Entries() {
		masked := 0
		for pos, sel := range mask {
			if sel && g.labels[pos] == e.Value {
				masked++
			}
		}
		line("\tClass %d (%d / %d) : %s", e.Value, masked, total[e.Value], e.Key)
	}

	return b.String(), nil
}

// vertexHash weights attribute (i, j) by cos(i / 1.5^(2j/D)).
func (g *Graph) vertexHash() []float64 {
	out := make([]float64, len(g.attrs))
	d := float64(g.dim)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.dim; j++ {
			w := math.Cos(float64(i) / math.Pow(1.5, 2*float64(j)/d))
			out[i*g.dim+j] = g.attrs[i*g.dim+j] * w
		}
	}
	return out
}

func meanOrNaN(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}
