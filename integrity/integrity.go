package integrity

import (
	"fmt"

	"github.com/katalvlaran/graphprep/graphview"
	"gonum.org/v1/gonum/floats/scalar"
)

// AssertIntegrity verifies that first and second agree on every shared
// vertex and returns how many shared vertices were checked. Shared vertices
// are visited in ascending position order of first, so the reported
// violation is deterministic.
//
// Complexity: O(N₁ + N₂ + E₁ + E₂ + I·D), I = size of the intersection.
func AssertIntegrity(first, second *graphview.Graph, opts ...Option) (int, error) {
	if first == nil || second == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fail := func(check, format string, args ...any) (int, error) {
		o.Recorder.Violation(check)
		return 0, fmt.Errorf("%w: %s: %s", ErrIntegrityViolation, check, fmt.Sprintf(format, args...))
	}

	v1, v2 := first.Vertices(), second.Vertices()
	if o.VertexSubset {
		for _, id := range v2.IDs() {
			if !v1.Has(id) {
				return fail(CheckVertexSubset, "vertex %q of second graph missing from first", id)
			}
		}
	}
	if o.LabelSubset {
		c1 := first.Classes()
		for _, name := range second.Classes().Names() {
			if !c1.Has(name) {
				return fail(CheckLabelSubset, "label %q of second graph missing from first", name)
			}
		}
	}

	idx1, idx2 := VertexIntersection(first, second)
	// shared[p] is the position in second of first's position p, or -1.
	shared := make([]int, first.NumVertices())
	for i := range shared {
		shared[i] = -1
	}
	// sharedSecond[q] marks second's positions that are shared.
	sharedSecond := make([]bool, second.NumVertices())
	for i, p := range idx1 {
		shared[p] = idx2[i]
		sharedSecond[idx2[i]] = true
	}
	ids1 := v1.IDs()

	for i, p1 := range idx1 {
		p2 := idx2[i]
		id := ids1[p1]

		if first.Dim() != second.Dim() || !rowsClose(first.Row(p1), second.Row(p2), o.AbsTol, o.RelTol) {
			return fail(CheckAttributes, "vertex %q: attributes differ", id)
		}

		n1, ok1 := first.LabelName(p1)
		n2, ok2 := second.LabelName(p2)
		if ok1 != ok2 || n1 != n2 {
			return fail(CheckLabel, "vertex %q: label %q in first, %q in second", id, n1, n2)
		}

		if !sameSharedNeighbors(first, second, p1, p2, shared, sharedSecond) {
			return fail(CheckNeighbors, "vertex %q: neighborhoods differ on shared vertices", id)
		}
	}

	o.Recorder.Checked(len(idx1))
	return len(idx1), nil
}

// VertexIntersection returns the positions of the vertices present in both
// graphs: idxFirst[i] in first and idxSecond[i] in second name the same
// vertex. Pairs are ordered by position in first.
func VertexIntersection(first, second *graphview.Graph) (idxFirst, idxSecond []int) {
	v2 := second.Vertices()
	for p1, id := range first.Vertices().IDs() {
		p2, err := v2.Position(id)
		if err != nil {
			continue
		}
		idxFirst = append(idxFirst, p1)
		idxSecond = append(idxSecond, p2)
	}
	return idxFirst, idxSecond
}

func rowsClose(a, b []float64, abs, rel float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], abs, rel) {
			return false
		}
	}
	return true
}

// sameSharedNeighbors compares the out-neighbors of p1 in first and p2 in
// second after dropping every neighbor not shared by both graphs. Neighbors
// are compared as positions in second, which identify vertices uniquely.
func sameSharedNeighbors(first, second *graphview.Graph, p1, p2 int, shared []int, sharedSecond []bool) bool {
	want := make(map[int]struct{})
	for _, u := range first.Neighbors(p1) {
		if q := shared[u]; q >= 0 {
			want[q] = struct{}{}
		}
	}

	got := 0
	for _, q := range second.Neighbors(p2) {
		if !sharedSecond[q] {
			continue
		}
		if _, ok := want[q]; !ok {
			return false
		}
		got++
	}
	return got == len(want)
}
