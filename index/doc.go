// Package index provides the bijective mappings that tie a graph's external
// names to its dense array positions.
//
// What:
//
//   - Bijection[K]: key ↔ integer mapping with the inverse built in.
//   - VertexIndex: vertex identifier ↔ position, values always cover [0, N).
//   - LabelIndex:  label name ↔ class id, with remapping, compression and
//     alignment to a fixed target index.
//
// Lifecycle:
//
//	Indices are never mutated in place. Every subset, remap or alignment
//	returns a fresh value, so an index may be shared freely between readers.
//
// Label alignment:
//
//	AlignTo(base, target) forces every label shared with target to target's
//	id and packs the remaining labels into the smallest unused ids:
//
//	    base   {A:0, B:1, C:2}
//	    target {B:0, C:5}
//	    result {1→0, 2→5, 0→1}      (old id → new id)
//
// Errors:
//
//   - ErrKeyNotFound:  lookup of an unknown key or value.
//   - ErrDuplicateKey: a value or key occurs twice while building.
//   - ErrNegativeID:   a label index entry with an id below zero.
//   - ErrNotDense:     vertex positions do not cover [0, N).
package index
