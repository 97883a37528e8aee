package index

import (
	"fmt"
	"slices"

	"github.com/tidwall/btree"
)

// Undefined is the class id of a vertex without a label.
const Undefined = -1

// Remapping maps an old class id to a new one. A new id of Undefined drops
// the class.
type Remapping map[int]int

// LabelIndex maps label names to class ids. Ids need not be dense.
type LabelIndex struct {
	Bijection[string]
}

// NewLabelIndex builds a LabelIndex from name → id. Negative ids and shared
// ids are rejected.
func NewLabelIndex(m map[string]int) (LabelIndex, error) {
	for name, id := range m {
		if id < 0 {
			return LabelIndex{}, fmt.Errorf("%w: label %q has id %d", ErrNegativeID, name, id)
		}
	}
	b, err := NewBijection(m)
	if err != nil {
		return LabelIndex{}, err
	}
	return LabelIndex{Bijection: b}, nil
}

// LabelIndexFromNames assigns id i to names[i].
func LabelIndexFromNames(names []string) (LabelIndex, error) {
	b, err := fromKeys(names)
	if err != nil {
		return LabelIndex{}, err
	}
	return LabelIndex{Bijection: b}, nil
}

// Name returns the label name of class id, or ErrKeyNotFound.
func (li LabelIndex) Name(id int) (string, error) { return li.Key(id) }

// ID returns the class id of name, or ErrKeyNotFound.
func (li LabelIndex) ID(name string) (int, error) { return li.Lookup(name) }

// Names returns all label names ordered by class id.
func (li LabelIndex) Names() []string {
	entries := li.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

// Remap applies r to the index. Names whose id is missing from r or mapped to
// Undefined are dropped. Two names landing on the same id fail with
// ErrDuplicateKey.
//
// Complexity: O(k).
func (li LabelIndex) Remap(r Remapping) (LabelIndex, error) {
	m := make(map[string]int, len(r))
	for oldID, newID := range r {
		if newID == Undefined {
			continue
		}
		name, ok := li.inverse[oldID]
		if !ok {
			continue
		}
		m[name] = newID
	}
	return NewLabelIndex(m)
}

// Apply returns labels rewritten through r. Ids absent from r become
// Undefined.
func (r Remapping) Apply(labels []int) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		if n, ok := r[l]; ok {
			out[i] = n
		} else {
			out[i] = Undefined
		}
	}
	return out
}

// Compression maps the distinct non-negative ids of labels, sorted
// ascending, onto 0..k-1. Undefined never takes part.
//
// Example: {0, 1, 3, 4} → {0:0, 1:1, 3:2, 4:3}.
//
// Complexity: O(N + k log k).
func Compression(labels []int) Remapping {
	seen := make(map[int]struct{})
	for _, l := range labels {
		if l >= 0 {
			seen[l] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	r := make(Remapping, len(ids))
	for newID, oldID := range ids {
		r[oldID] = newID
	}
	return r
}

// AlignTo returns a Remapping of base's ids such that every label name
// present in both indices receives target's id. The remaining labels of base
// are visited in ascending id order and each receives the smallest
// non-negative id not used by any forced or previously assigned id.
//
// The used ids are held in an ordered set; the smallest free id is found by
// an ascending scan that stops at the first gap.
//
// Complexity: O(k log k + k·u) in the worst case, u = number of used ids.
func AlignTo(base, target LabelIndex) Remapping {
	r := make(Remapping, base.Len())
	var used btree.Set[int]

	for _, e := range target.Entries() {
		oldID, ok := base.forward[e.Key]
		if !ok {
			continue
		}
		r[oldID] = e.Value
		used.Insert(e.Value)
	}

	for _, e := range base.Entries() {
		if _, ok := r[e.Value]; ok {
			continue
		}
		free := smallestFree(&used)
		r[e.Value] = free
		used.Insert(free)
	}

	return r
}

// smallestFree returns the smallest non-negative integer not in used.
func smallestFree(used *btree.Set[int]) int {
	next := 0
	used.Ascend(0, func(id int) bool {
		if id != next {
			return false
		}
		next++
		return true
	})
	return next
}
