// Package dataset reads and writes attributed graphs as JSON documents.
//
// A document lists vertices by identifier, each with an optional label name
// and an attribute vector, and edges as pairs of identifiers:
//
//	{
//	  "classes":  {"ai": 0, "db": 3},
//	  "vertices": [{"id": "p1", "label": "ai", "attributes": [0, 1]}],
//	  "edges":    [["p1", "p2"]],
//	  "mask":     ["p1"]
//	}
//
// "classes" maps label names to class ids, which need not be dense: ids
// aligned to another view are written and read back unchanged. When absent,
// the distinct label names are numbered 0..k-1 in ascending name order. A vertex without a label is
// undefined (-1). "mask" is written for derived views; a document without
// one loads with every vertex selected.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/index"
)

// ErrMalformed is returned for documents that do not describe a valid graph.
var ErrMalformed = errors.New("dataset: malformed document")

// Vertex is one vertex record.
type Vertex struct {
	ID         string    `json:"id"`
	Label      *string   `json:"label,omitempty"`
	Attributes []float64 `json:"attributes"`
}

// Document is the on-disk form of a graph.
type Document struct {
	Classes  map[string]int `json:"classes,omitempty"`
	Vertices []Vertex       `json:"vertices"`
	Edges    [][2]string    `json:"edges"`
	Mask     []string       `json:"mask,omitempty"`
}

// Decode reads one document from r and builds the graph and its mask. The
// mask selects every vertex when the document carries none.
func Decode(r io.Reader) (*graphview.Graph, graphview.Mask, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.Graph()
}

// Graph converts doc into a graph and its mask.
func (doc *Document) Graph() (*graphview.Graph, graphview.Mask, error) {
	ids := make([]string, len(doc.Vertices))
	for i, v := range doc.Vertices {
		ids[i] = v.ID
	}
	vi, err := index.NewVertexIndex(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	li, err := doc.labelIndex()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: classes: %w", ErrMalformed, err)
	}

	attrs := make([][]float64, len(doc.Vertices))
	labels := make([]int, len(doc.Vertices))
	for i, v := range doc.Vertices {
		attrs[i] = v.Attributes
		labels[i] = index.Undefined
		if v.Label != nil {
			if labels[i], err = li.ID(*v.Label); err != nil {
				return nil, nil, fmt.Errorf("%w: vertex %q: %w", ErrMalformed, v.ID, err)
			}
		}
	}

	edges := make([]graphview.Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		u, err := vi.Position(e[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d: %w", ErrMalformed, i, err)
		}
		v, err := vi.Position(e[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d: %w", ErrMalformed, i, err)
		}
		edges[i] = graphview.Edge{From: u, To: v}
	}

	g, err := graphview.New(graphview.Data{
		Attributes: attrs,
		Edges:      edges,
		Labels:     labels,
		VertexIDs:  ids,
		Classes:    li.Map(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if doc.Mask == nil {
		return g, graphview.NewMask(g.NumVertices(), true), nil
	}
	m, err := graphview.MaskFromVertices(doc.Mask, g.Vertices(), -1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: mask: %w", ErrMalformed, err)
	}
	return g, m, nil
}

// labelIndex returns the declared classes, or numbers the distinct label
// names in ascending order when none are declared.
func (doc *Document) labelIndex() (index.LabelIndex, error) {
	if doc.Classes != nil {
		return index.NewLabelIndex(doc.Classes)
	}
	var names []string
	for _, v := range doc.Vertices {
		if v.Label != nil {
			names = append(names, *v.Label)
		}
	}
	slices.Sort(names)
	return index.LabelIndexFromNames(slices.Compact(names))
}

// NewDocument converts g into its on-disk form, class ids included. A nil
// mask is omitted.
func NewDocument(g *graphview.Graph, mask graphview.Mask) (*Document, error) {
	doc := &Document{
		Classes:  g.Classes().Map(),
		Vertices: make([]Vertex, g.NumVertices()),
		Edges:    make([][2]string, 0, g.NumEdges()),
	}
	ids := g.Vertices().IDs()
	for i := range doc.Vertices {
		doc.Vertices[i] = Vertex{ID: ids[i], Attributes: g.Row(i)}
		if name, ok := g.LabelName(i); ok {
			doc.Vertices[i].Label = &name
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]string{ids[e.From], ids[e.To]})
	}
	if mask != nil {
		if len(mask) != g.NumVertices() {
			return nil, fmt.Errorf("%w: mask has %d entries, graph %d vertices", graphview.ErrShapeMismatch, len(mask), g.NumVertices())
		}
		doc.Mask = graphview.VerticesFromMask(mask, g.Vertices())
	}
	return doc, nil
}

// Encode writes g and mask to w as indented JSON.
func Encode(w io.Writer, g *graphview.Graph, mask graphview.Mask) error {
	doc, err := NewDocument(g, mask)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Load reads the document at path.
func Load(path string) (*graphview.Graph, graphview.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes g and mask to path.
func Save(path string, g *graphview.Graph, mask graphview.Mask) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	if err := Encode(f, g, mask); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
