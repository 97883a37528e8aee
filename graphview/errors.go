// SPDX-License-Identifier: MIT

package graphview

import "errors"

var (
	// ErrShapeMismatch indicates inconsistent array shapes or out-of-range positions.
	ErrShapeMismatch = errors.New("graphview: shape mismatch")

	// ErrUnknownLabel indicates a label id absent from the graph's label index.
	ErrUnknownLabel = errors.New("graphview: unknown label id")
)
