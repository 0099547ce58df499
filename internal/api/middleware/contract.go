package middleware

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

// TokenVerifier checks bearer tokens and resolves them to a user id.
type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

// UserDirectory resolves user ids to accounts. Roles are always re-read
// here on permission checks, never trusted from the token.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
}

// Logger is the logging surface the middleware needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
