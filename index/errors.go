package index

import "errors"

// Sentinel errors for index construction and lookup.
var (
	// ErrKeyNotFound indicates a lookup of a key (or value) absent from the mapping.
	ErrKeyNotFound = errors.New("index: key not found")

	// ErrDuplicateKey indicates that two entries collide while building a bijection.
	ErrDuplicateKey = errors.New("index: duplicate entry")

	// ErrNegativeID indicates a class id below zero in a label index.
	ErrNegativeID = errors.New("index: negative class id")

	// ErrNotDense indicates vertex positions that do not form the range [0, N).
	ErrNotDense = errors.New("index: positions are not dense")
)
