package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a caller-supplied value is outside the accepted set.
	ErrInvalidInput = errors.New("invalid input")
)
