// Package normalize reduces a graph to a stable, well-formed core before any
// split is drawn from it.
//
// Normalize repeats two reductions until neither changes the vertex count:
//
//  1. keep only the largest (weakly) connected component;
//  2. drop every class with fewer vertices than MinClassCount.
//
// Each step can re-trigger the other: dropping a class may disconnect the
// graph, and re-selecting the component may leave a class under-represented.
// The vertex count never grows and is bounded by zero, so the loop ends.
// Afterwards class ids are compressed to 0..k-1 over the surviving labels,
// in ascending order of their previous ids.
//
// Setting MinClassCount to k/p keeps at least k vertices of every class in a
// stratified portion p of the result. MinClassCount 0 disables pruning and
// Normalize degenerates to a plain largest-component extraction.
//
// Progress (vertex counts, pruned classes) goes to a *slog.Logger and to an
// optional metrics.Recorder.
package normalize
