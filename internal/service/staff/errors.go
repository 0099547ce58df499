package staff

import "errors"

var (
	// ErrStaffNotFound is returned when no staff member matches the id.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrBayOccupied is returned when the bay is held by another member.
	ErrBayOccupied = errors.New("bay is already occupied")

	// ErrInvalidBay is returned when the bay name is not in the fixed set.
	ErrInvalidBay = errors.New("invalid bay")

	// ErrInvalidStatus is returned when the status is unknown.
	ErrInvalidStatus = errors.New("invalid staff status")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("staff service: internal error")
)
