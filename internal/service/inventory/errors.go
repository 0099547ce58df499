package inventory

import "errors"

var (
	// ErrItemNotFound is returned when no item matches the reference.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrInvalidQuantity is returned when a restock quantity is not positive.
	ErrInvalidQuantity = errors.New("restock quantity must be positive")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("inventory service: internal error")
)
