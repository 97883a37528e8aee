// Package graphview defines Graph, the attributed, labeled graph that every
// normalization and split step consumes and produces.
//
// A Graph owns five things:
//
//   - attributes: N×D feature matrix, row i = vertex at position i
//   - adjacency:  directed edge set between positions (CSR, sorted, no duplicates)
//   - labels:     class id per position, index.Undefined (-1) for "no label"
//   - vertices:   index.VertexIndex, vertex id ↔ position
//   - classes:    index.LabelIndex, label name ↔ class id
//
// Every transformation (SelectByMask, MakeSymmetric, LargestConnectedComponent,
// RemapLabels, …) returns a new Graph; nothing is shared with, or written
// back into, the receiver. Accessors hand out copies. Concurrent readers of
// one Graph are therefore always safe.
//
// Masks:
//
//	A Mask is a []bool aligned with one Graph's positions. A mask built
//	against a graph of N vertices means nothing for a reduced graph of
//	N' < N vertices; Restrict and Expand translate between the two.
//
// Components:
//
//	Connectivity is weak: an edge u→v joins u and v regardless of direction.
//	Components are numbered by their smallest position, so ties in
//	LargestConnectedComponent go to the component holding the lowest position.
//
//	    0───1   3
//	        │   │
//	        2   4───5
//
//	    components: {0,1,2} #0, {3,4,5} #1 → LCC = #0 (tie, lower number)
//
// Complexity:
//
//   - New:                       O(N·D + E log d)
//   - SelectByMask:              O(N·D + E)
//   - MakeSymmetric:             O(N + E log d)
//   - ConnectedComponents / LCC: O(N + E)
//
// Errors:
//
//   - ErrShapeMismatch: arrays of inconsistent length, ragged attribute rows,
//     edge endpoints out of range, mask of the wrong length.
//   - ErrUnknownLabel:  a label id that is neither -1 nor in the label index.
//   - index.ErrKeyNotFound: unknown vertex id in MaskFromVertices.
package graphview
