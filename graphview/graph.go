// SPDX-License-Identifier: MIT

package graphview

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphprep/index"
	"gonum.org/v1/gonum/mat"
)

// Edge is a directed edge between two positions.
type Edge struct {
	From int
	To   int
}

// Data is the raw input of New: the shape a dataset loader delivers.
type Data struct {
	// Attributes holds one feature row per vertex; all rows share one width.
	Attributes [][]float64

	// Edges are directed; duplicates collapse, order is irrelevant.
	Edges []Edge

	// Labels holds one class id per vertex, index.Undefined for none.
	Labels []int

	// VertexIDs names position i. Nil means "0", "1", … by position.
	VertexIDs []string

	// Classes maps label name → class id.
	Classes map[string]int
}

// Graph is an immutable attributed graph. See the package documentation.
type Graph struct {
	n   int
	dim int

	attrs []float64 // row-major n×dim

	// CSR adjacency: out-neighbors of u are cols[rowPtr[u]:rowPtr[u+1]],
	// sorted ascending, without duplicates.
	rowPtr []int
	cols   []int

	labels []int

	vertices index.VertexIndex
	classes  index.LabelIndex
}

// New validates d and builds a Graph from copies of its arrays.
//
// Complexity: O(N·D + E log d).
func New(d Data) (*Graph, error) {
	n := len(d.Attributes)
	if len(d.Labels) != n {
		return nil, fmt.Errorf("%w: %d attribute rows, %d labels", ErrShapeMismatch, n, len(d.Labels))
	}
	dim := 0
	if n > 0 {
		dim = len(d.Attributes[0])
	}
	attrs := make([]float64, 0, n*dim)
	for i, row := range d.Attributes {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d attributes, want %d", ErrShapeMismatch, i, len(row), dim)
		}
		attrs = append(attrs, row...)
	}

	ids := d.VertexIDs
	if ids == nil {
		ids = make([]string, n)
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d vertex ids for %d vertices", ErrShapeMismatch, len(ids), n)
	}
	vertices, err := index.NewVertexIndex(ids)
	if err != nil {
		return nil, err
	}
	classes, err := index.NewLabelIndex(d.Classes)
	if err != nil {
		return nil, err
	}

	labels := make([]int, n)
	for i, l := range d.Labels {
		if l != index.Undefined && !classes.HasValue(l) {
			return nil, fmt.Errorf("%w: vertex %d has label %d", ErrUnknownLabel, i, l)
		}
		labels[i] = l
	}

	for _, e := range d.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrShapeMismatch, e.From, e.To, n)
		}
	}
	rowPtr, cols := buildCSR(n, d.Edges)

	return &Graph{
		n:        n,
		dim:      dim,
		attrs:    attrs,
		rowPtr:   rowPtr,
		cols:     cols,
		labels:   labels,
		vertices: vertices,
		classes:  classes,
	}, nil
}

// NumVertices returns N.
func (g *Graph) NumVertices() int { return g.n }

// Dim returns the number of attributes per vertex.
func (g *Graph) Dim() int { return g.dim }

// NumEdges returns the number of distinct directed edges.
func (g *Graph) NumEdges() int { return len(g.cols) }

// Vertices returns the vertex index.
func (g *Graph) Vertices() index.VertexIndex { return g.vertices }

// Classes returns the label index.
func (g *Graph) Classes() index.LabelIndex { return g.classes }

// Row returns a copy of the attribute vector at pos.
func (g *Graph) Row(pos int) []float64 {
	out := make([]float64, g.dim)
	copy(out, g.row(pos))
	return out
}

func (g *Graph) row(pos int) []float64 {
	return g.attrs[pos*g.dim : (pos+1)*g.dim]
}

// AttributeMatrix returns a copy of the attributes as a gonum matrix, or nil
// when the graph has no vertices or no attributes.
func (g *Graph) AttributeMatrix() *mat.Dense {
	if g.n == 0 || g.dim == 0 {
		return nil
	}
	data := make([]float64, len(g.attrs))
	copy(data, g.attrs)
	return mat.NewDense(g.n, g.dim, data)
}

// Labels returns a copy of the label vector.
func (g *Graph) Labels() []int {
	out := make([]int, g.n)
	copy(out, g.labels)
	return out
}

// Label returns the class id at pos.
func (g *Graph) Label(pos int) int { return g.labels[pos] }

// LabelName returns the label name at pos; ok is false for undefined labels.
func (g *Graph) LabelName(pos int) (name string, ok bool) {
	name, err := g.classes.Name(g.labels[pos])
	if err != nil {
		return "", false
	}
	return name, true
}

// Neighbors returns a copy of the out-neighbors of pos in ascending order.
func (g *Graph) Neighbors(pos int) []int {
	nb := g.cols[g.rowPtr[pos]:g.rowPtr[pos+1]]
	out := make([]int, len(nb))
	copy(out, nb)
	return out
}

// Edges returns all edges ordered by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.cols))
	for u := 0; u < g.n; u++ {
		for _, v := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
			out = append(out, Edge{From: u, To: v})
		}
	}
	return out
}

// HasEdge reports whether u→v is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}
	for _, w := range g.cols[g.rowPtr[u]:g.rowPtr[u+1]] {
		if w == v {
			return true
		}
		if w > v {
			return false
		}
	}
	return false
}

func (g *Graph) checkMask(m Mask) error {
	if len(m) != g.n {
		return fmt.Errorf("%w: mask of length %d for %d vertices", ErrShapeMismatch, len(m), g.n)
	}
	return nil
}
