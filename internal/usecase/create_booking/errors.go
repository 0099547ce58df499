package create_booking

import "errors"

var (
	// ErrBranchNotFound is returned when the branch id is not in the catalog.
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrCategoryNotAvailable is returned when the category is not offered
	// at the chosen branch.
	ErrCategoryNotAvailable = errors.New("create_booking: category not available at this branch")

	// ErrServiceNotFound is returned when a requested service id is not in
	// the catalog or belongs to another category.
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate is returned when the booking date is in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot is returned when the time slot is not in the fixed
	// daily schedule.
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable is returned when every spot in the slot is taken.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_booking: internal error")
)
