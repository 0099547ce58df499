package corporate

import "errors"

var (
	// ErrCompanyNotFound is returned when no company matches the id or code.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrEmployeeNotFound is returned when no employee matches the id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateCode is returned when a corporate code is already taken.
	ErrDuplicateCode = errors.New("corporate code already exists")

	// ErrDiscountNotActive is returned when a discount id resolves to an
	// inactive employee or a non-active company.
	ErrDiscountNotActive = errors.New("discount is not active")

	// ErrInvalidStatus is returned when the status is unknown.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("corporate service: internal error")
)
