package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrLastCategory  = errors.New("cannot delete the last category")
	ErrInvalidImport = errors.New("invalid import file")
)
