package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// generic: it never reveals whether the username or the password was
	// wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidRole is returned when the role is unknown.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("users service: internal error")
)
