// Package graphprep prepares attributed graphs for node classification
// experiments: from one graph (attribute vectors, labels, edges) it derives
// connected, relabeled subgraphs for training, validation and testing, and
// guarantees that any vertex appearing in two derived graphs carries the same
// attributes, label name and neighborhood in both.
//
// Under the hood, everything is organized in subpackages:
//
//	index/      — vertex and label bijections, label remapping and alignment
//	graphview/  — immutable CSR graph with masks, components, symmetrization
//	normalize/  — fixed point of "largest component, prune small classes"
//	subgraph/   — label-restricted subgraphs, label selectors, ID/OOD split
//	integrity/  — cross-graph consistency checks on shared vertices
//	split/      — seeded stratified splits and per-class sampling
//	pipeline/   — orchestration of the above into train/val/test views
//	config/     — YAML run configuration
//	dataset/    — JSON graph documents
//	metrics/    — Prometheus collectors
//	cmd/graphprep — command line entry point (run, summary, check)
//
// Quick ASCII example:
//
//	    a0───a1───b2        b5
//	          │    │
//	         b3───b4
//
// Normalizing keeps the component {a0, a1, b2, b3, b4}; with a minimum of
// three vertices per class, class a is pruned next, and the remaining b
// vertices {b2, b3, b4}, still connected, form the fixed point.
//
// Every operation returns a new graph; inputs are never modified, so views
// may be read and derived from concurrently. Randomized operations take an
// explicit seed or *rand.Rand and are reproducible.
//
//	go install github.com/katalvlaran/graphprep/cmd/graphprep@latest
package graphprep
