package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the reference.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned when the requested status is unknown.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("bookings service: internal error")
)
