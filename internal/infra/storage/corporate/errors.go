package corporate

import "errors"

var (
	// ErrCompanyNotFound is returned when no company matches the id or code.
	ErrCompanyNotFound = errors.New("corporate.repository: company not found")

	// ErrEmployeeNotFound is returned when no employee matches the id.
	ErrEmployeeNotFound = errors.New("corporate.repository: employee not found")

	// ErrDuplicateCode is returned when a corporate code is already taken.
	ErrDuplicateCode = errors.New("corporate.repository: corporate code already exists")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("corporate.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("corporate.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("corporate.repository: failed to scan row")
)
