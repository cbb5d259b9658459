package domain

import "errors"

var (
	// ErrUnknownUnit is returned when a unit symbol is not registered for the
	// stated quantity kind, or the kind itself is not recognized.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrKindMismatch is returned when a conversion is attempted between units
	// of different quantity kinds.
	ErrKindMismatch = errors.New("unit kind mismatch")

	// ErrInvalidInput is returned for physically meaningless inputs:
	// non-positive dimensions, negative flow, or a missing/doubled
	// mutually-exclusive parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownComponent is returned when a gas composition names a component
	// that is not in the property table.
	ErrUnknownComponent = errors.New("unknown gas component")
)
