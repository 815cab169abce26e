package documents

import "errors"

var (
	// ErrNotFound is returned when no document with the given id is owned by
	// the caller. It deliberately does not distinguish "absent" from "owned
	// by someone else".
	ErrNotFound = errors.New("document not found")

	// ErrInvalidInput is returned for malformed or missing input fields.
	ErrInvalidInput = errors.New("invalid input")
)
