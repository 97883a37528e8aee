// Package subgraph derives label-restricted views from a graph.
//
// SelectByLabels keeps the vertices of chosen classes, optionally narrows the
// result to its largest connected component and compresses class ids. The
// returned mask is always expressed against the input graph:
//
//	input ──label mask──▶ selected ──LCC mask──▶ result
//	mask = label mask with every position dropped by the LCC step cleared
//
// LabelSelector is the configuration-facing way to name classes: either
// "all" or a list of label names. Integer addressing is deprecated and
// rejected with ErrUnsupported.
package subgraph
