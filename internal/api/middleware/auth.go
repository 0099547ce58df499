// Package middleware holds the router-level HTTP middleware: bearer token
// authentication, role permission checks, CORS and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

type ctxKey int

const userIDKey ctxKey = iota

const (
	msgMissingToken = "authorization required"
	msgInvalidToken = "invalid or expired token"
	msgForbidden    = "insufficient permissions"
)

// UserIDFromContext returns the authenticated user id set by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Auth verifies the Authorization bearer token and puts the user id into
// the request context. Requests without a valid token get a 401.
func Auth(tokens TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Warn("auth middleware - Token rejected: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission re-reads the caller's account and checks the permission
// against its current role. A role change or a deleted account takes effect
// on the next request.
func RequirePermission(users UserDirectory, logger Logger, permission string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				logger.Warn("permission middleware - User %d lookup failed: %v", userID, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if !domain.HasPermission(domain.Role(user.Role), permission) {
				logger.Warn("permission middleware - User %d (%s) denied %q", userID, user.Role, permission)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next(w, r)
		}
	}
}
