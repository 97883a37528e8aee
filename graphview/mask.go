// SPDX-License-Identifier: MIT

package graphview

import (
	"fmt"

	"github.com/katalvlaran/graphprep/index"
)

// Mask selects a subset of a Graph's positions.
type Mask []bool

// NewMask returns a mask of length n with every entry set to v.
func NewMask(n int, v bool) Mask {
	m := make(Mask, n)
	if v {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// Count returns the number of selected positions.
func (m Mask) Count() int {
	c := 0
	for _, v := range m {
		if v {
			c++
		}
	}
	return c
}

// Indices returns the selected positions in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// And returns m ∧ o. Lengths must match.
func (m Mask) And(o Mask) (Mask, error) {
	if len(m) != len(o) {
		return nil, fmt.Errorf("%w: mask lengths %d and %d", ErrShapeMismatch, len(m), len(o))
	}
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && o[i]
	}
	return out, nil
}

// Or returns m ∨ o. Lengths must match.
func (m Mask) Or(o Mask) (Mask, error) {
	if len(m) != len(o) {
		return nil, fmt.Errorf("%w: mask lengths %d and %d", ErrShapeMismatch, len(m), len(o))
	}
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] || o[i]
	}
	return out, nil
}

// Not returns ¬m.
func (m Mask) Not() Mask {
	out := make(Mask, len(m))
	for i, v := range m {
		out[i] = !v
	}
	return out
}

// Restrict projects m onto the positions kept by selection: the result has
// selection.Count() entries and entry j is m at the j-th selected position.
// Use it to carry a mask into the graph returned by SelectByMask(selection).
func (m Mask) Restrict(selection Mask) (Mask, error) {
	if len(m) != len(selection) {
		return nil, fmt.Errorf("%w: mask length %d, selection length %d", ErrShapeMismatch, len(m), len(selection))
	}
	out := make(Mask, 0, selection.Count())
	for i, s := range selection {
		if s {
			out = append(out, m[i])
		}
	}
	return out, nil
}

// Expand is the inverse of Restrict: inner is aligned with the positions
// selected by m, and the result is aligned with m. A position is set only if
// it is selected by m and by inner.
func (m Mask) Expand(inner Mask) (Mask, error) {
	if len(inner) != m.Count() {
		return nil, fmt.Errorf("%w: inner length %d, selected %d", ErrShapeMismatch, len(inner), m.Count())
	}
	out := make(Mask, len(m))
	j := 0
	for i, s := range m {
		if !s {
			continue
		}
		out[i] = inner[j]
		j++
	}
	return out, nil
}

// MaskFromVertices selects the positions of ids in vi. n is the mask length;
// n < 0 means vi.Len(). Unknown ids fail with index.ErrKeyNotFound.
func MaskFromVertices(ids []string, vi index.VertexIndex, n int) (Mask, error) {
	if n < 0 {
		n = vi.Len()
	}
	m := make(Mask, n)
	for _, id := range ids {
		pos, err := vi.Position(id)
		if err != nil {
			return nil, err
		}
		if pos >= n {
			return nil, fmt.Errorf("%w: position %d of %q outside mask of %d", ErrShapeMismatch, pos, id, n)
		}
		m[pos] = true
	}
	return m, nil
}

// VerticesFromMask returns the ids selected by m, ordered by position.
func VerticesFromMask(m Mask, vi index.VertexIndex) []string {
	ids := vi.IDs()
	out := make([]string, 0, m.Count())
	for pos, v := range m {
		if v && pos < len(ids) {
			out = append(out, ids[pos])
		}
	}
	return out
}

// LabelMask selects the positions whose label is in selected.
func LabelMask(labels []int, selected []int) Mask {
	set := make(map[int]struct{}, len(selected))
	for _, l := range selected {
		set[l] = struct{}{}
	}
	m := make(Mask, len(labels))
	for i, l := range labels {
		_, m[i] = set[l]
	}
	return m
}
