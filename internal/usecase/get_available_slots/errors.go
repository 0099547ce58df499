package get_available_slots

import "errors"

var (
	// ErrBranchNotFound is returned when the branch id is not in the catalog.
	ErrBranchNotFound = errors.New("get_available_slots: branch not found")

	// ErrInvalidDate is returned when the date is in the past.
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
