package index

import (
	"cmp"
	"fmt"
	"slices"
)

// Entry is a single key/value pair of a Bijection.
type Entry[K comparable] struct {
	Key   K
	Value int
}

// Bijection is an immutable one-to-one mapping between keys and integers.
// forward and inverse are always built together and never mutated after
// construction.
type Bijection[K comparable] struct {
	forward map[K]int
	inverse map[int]K
}

// NewBijection builds a Bijection from m. Two keys sharing a value fail with
// ErrDuplicateKey. The input map is copied.
//
// Complexity: O(n).
func NewBijection[K comparable](m map[K]int) (Bijection[K], error) {
	b := Bijection[K]{
		forward: make(map[K]int, len(m)),
		inverse: make(map[int]K, len(m)),
	}
	for k, v := range m {
		if prev, ok := b.inverse[v]; ok {
			return Bijection[K]{}, fmt.Errorf("%w: value %d held by %v and %v", ErrDuplicateKey, v, prev, k)
		}
		b.forward[k] = v
		b.inverse[v] = k
	}

	return b, nil
}

// fromKeys assigns 0..len(keys)-1 in slice order.
func fromKeys[K comparable](keys []K) (Bijection[K], error) {
	b := Bijection[K]{
		forward: make(map[K]int, len(keys)),
		inverse: make(map[int]K, len(keys)),
	}
	for i, k := range keys {
		if _, ok := b.forward[k]; ok {
			return Bijection[K]{}, fmt.Errorf("%w: key %v", ErrDuplicateKey, k)
		}
		b.forward[k] = i
		b.inverse[i] = k
	}

	return b, nil
}

// Len returns the number of entries.
func (b Bijection[K]) Len() int { return len(b.forward) }

// Has reports whether k is mapped.
func (b Bijection[K]) Has(k K) bool {
	_, ok := b.forward[k]
	return ok
}

// HasValue reports whether some key maps to v.
func (b Bijection[K]) HasValue(v int) bool {
	_, ok := b.inverse[v]
	return ok
}

// Lookup returns the value of k, or ErrKeyNotFound.
func (b Bijection[K]) Lookup(k K) (int, error) {
	v, ok := b.forward[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return v, nil
}

// Key returns the key mapped to v, or ErrKeyNotFound.
func (b Bijection[K]) Key(v int) (K, error) {
	k, ok := b.inverse[v]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: value %d", ErrKeyNotFound, v)
	}
	return k, nil
}

// Invert returns a copy of the value → key mapping.
func (b Bijection[K]) Invert() map[int]K {
	out := make(map[int]K, len(b.inverse))
	for v, k := range b.inverse {
		out[v] = k
	}
	return out
}

// Map returns a copy of the key → value mapping.
func (b Bijection[K]) Map() map[K]int {
	out := make(map[K]int, len(b.forward))
	for k, v := range b.forward {
		out[k] = v
	}
	return out
}

// Entries returns all pairs ordered by ascending value.
//
// Complexity: O(n log n).
func (b Bijection[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, len(b.forward))
	for k, v := range b.forward {
		out = append(out, Entry[K]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(x, y Entry[K]) int { return cmp.Compare(x.Value, y.Value) })
	return out
}

// Values returns the mapped values in ascending order.
func (b Bijection[K]) Values() []int {
	out := make([]int, 0, len(b.inverse))
	for v := range b.inverse {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Subset keeps the entries for which keep returns true and renumbers them
// 0, 1, 2, … in ascending order of their old values.
//
// Complexity: O(n log n).
func (b Bijection[K]) Subset(keep func(k K, v int) bool) Bijection[K] {
	entries := b.Entries()
	out := Bijection[K]{
		forward: make(map[K]int, len(entries)),
		inverse: make(map[int]K, len(entries)),
	}
	next := 0
	for _, e := range entries {
		if !keep(e.Key, e.Value) {
			continue
		}
		out.forward[e.Key] = next
		out.inverse[next] = e.Key
		next++
	}

	return out
}

// Equal reports whether b and o hold exactly the same pairs.
func (b Bijection[K]) Equal(o Bijection[K]) bool {
	if len(b.forward) != len(o.forward) {
		return false
	}
	for k, v := range b.forward {
		if w, ok := o.forward[k]; !ok || w != v {
			return false
		}
	}
	return true
}
