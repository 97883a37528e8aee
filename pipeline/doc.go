// Package pipeline turns one attributed graph into reproducible
// train/validation/test views.
//
// Run normalizes the input, computes one split per configured seed, and
// builds for every seed:
//
//   - a training view, optionally reduced to the training labels and their
//     largest connected component, with compressed class ids;
//   - a validation view whose class ids are aligned to the training view, so
//     the same name carries the same id in both;
//   - a test view over the normalized graph, aligned the same way.
//
// Each view is a graph together with the mask of vertices that take part in
// loss or metric computation. Before a split is returned, every pair of
// derived graphs is checked to agree on shared vertices, and every pair must
// actually share vertices.
package pipeline
