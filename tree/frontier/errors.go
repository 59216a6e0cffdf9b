package frontier

import "errors"

var (
	// ErrTreeFull is returned by Append when the tree already holds its
	// maximum number of leaves.
	ErrTreeFull = errors.New("tree is full")

	// ErrUnknownVersion is returned when a serialized frontier carries a
	// version tag this implementation does not recognize.
	ErrUnknownVersion = errors.New("unrecognized frontier serialization version")

	// ErrMalformed is returned when a serialized frontier is structurally
	// inconsistent. Stream failures, including truncation, are reported
	// as the underlying I/O error instead.
	ErrMalformed = errors.New("malformed frontier serialization")
)
