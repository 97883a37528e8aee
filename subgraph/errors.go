package subgraph

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("subgraph: graph is nil")

	// ErrUnsupported marks a label addressing scheme that is not supported.
	ErrUnsupported = errors.New("subgraph: unsupported")
)
