package simulation

import "errors"

// Common errors returned by the simulation engine.
var (
	// ErrInvalidKind is returned when the simulation type is not one of the
	// supported kinds.
	ErrInvalidKind = errors.New("invalid simulation kind")

	// ErrInvalidInput is returned when an input value cannot be used by the
	// selected calculator (wrong JSON type, non-positive frequency, or a
	// computation that overflows to a non-finite number).
	ErrInvalidInput = errors.New("invalid simulation input")
)
