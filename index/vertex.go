package index

import "fmt"

// VertexIndex maps stable vertex identifiers to dense positions in [0, N).
type VertexIndex struct {
	Bijection[string]
}

// NewVertexIndex assigns position i to ids[i]. Duplicate ids fail with
// ErrDuplicateKey.
//
// Complexity: O(N).
func NewVertexIndex(ids []string) (VertexIndex, error) {
	b, err := fromKeys(ids)
	if err != nil {
		return VertexIndex{}, err
	}
	return VertexIndex{Bijection: b}, nil
}

// VertexIndexFromMap validates that the positions of m cover [0, len(m)).
func VertexIndexFromMap(m map[string]int) (VertexIndex, error) {
	b, err := NewBijection(m)
	if err != nil {
		return VertexIndex{}, err
	}
	for v := range b.inverse {
		if v < 0 || v >= len(m) {
			return VertexIndex{}, fmt.Errorf("%w: position %d with %d vertices", ErrNotDense, v, len(m))
		}
	}
	return VertexIndex{Bijection: b}, nil
}

// IDs returns the identifiers ordered by position.
func (vi VertexIndex) IDs() []string {
	out := make([]string, len(vi.inverse))
	for pos, id := range vi.inverse {
		out[pos] = id
	}
	return out
}

// ID returns the identifier at pos, or ErrKeyNotFound.
func (vi VertexIndex) ID(pos int) (string, error) { return vi.Key(pos) }

// Position returns the position of id, or ErrKeyNotFound.
func (vi VertexIndex) Position(id string) (int, error) { return vi.Lookup(id) }

// Select keeps the positions p with keep[p] set and renumbers them in
// ascending old-position order. len(keep) must equal Len().
//
// Complexity: O(N).
func (vi VertexIndex) Select(keep []bool) VertexIndex {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}
	out := Bijection[string]{
		forward: make(map[string]int, n),
		inverse: make(map[int]string, n),
	}
	next := 0
	for pos, k := range keep {
		if !k {
			continue
		}
		id := vi.inverse[pos]
		out.forward[id] = next
		out.inverse[next] = id
		next++
	}

	return VertexIndex{Bijection: out}
}
