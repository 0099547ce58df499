package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the id or username.
	ErrUserNotFound = errors.New("users.repository: user not found")

	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("users.repository: username already exists")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("users.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("users.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("users.repository: failed to scan row")
)
