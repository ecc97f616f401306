package usecase

import "errors"

var (
	// ErrInvalidInput marks requests rejected before any store is consulted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDependencyUnavailable marks a store failure on a path that cannot degrade.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
