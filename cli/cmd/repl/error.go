package repl

import "errors"

// Sentinel errors.
var (
	ErrNoSource     = errors.New("no source document")
	ErrOutOfBounds  = errors.New("index out of range")
	ErrEditDeclined = errors.New("decline edit")
)
