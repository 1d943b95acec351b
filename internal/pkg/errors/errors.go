package errors

import "errors"

var (
	// ErrDuplicateKey is a generic sentinel for identity-constraint violations.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrEndpointNotFound is a generic sentinel for unresolved edge endpoints.
	ErrEndpointNotFound = errors.New("endpoint not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
