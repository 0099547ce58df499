package inventory

import "errors"

var (
	// ErrItemNotFound is returned when no item matches the reference.
	ErrItemNotFound = errors.New("inventory.repository: item not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)
