package auth

import (
	"errors"
	"net/http"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	usersSvc "github.com/anuratyres/ATS-ShopService/internal/service/users"
	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersSvc.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Rejected for %q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, usersSvc.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User %s signed in", result.User.Username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
