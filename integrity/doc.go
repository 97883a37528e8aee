// Package integrity cross-checks two graphs that are believed to be
// subgraphs of one common supergraph.
//
// For every vertex present in both graphs (matched by identifier, never by
// position) AssertIntegrity verifies:
//
//   - attributes: both rows are numerically close (floats.EqualWithinAbsOrRel);
//   - label:      both positions carry the same label name (ids may differ
//     after compression or alignment);
//   - structure:  the out-neighbors of the vertex, restricted to the shared
//     vertices, are the same identifiers in both graphs.
//
// Optionally the second graph's vertices and label names must be subsets of
// the first's. The first violation aborts the check with
// ErrIntegrityViolation; otherwise the number of checked vertices is
// returned, which callers should compare against the size they expect.
package integrity
