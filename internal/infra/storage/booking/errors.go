package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the reference.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeServices is returned when the services snapshot cannot be
	// encoded or decoded.
	ErrEncodeServices = errors.New("booking.repository: failed to encode services snapshot")
)
