package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	usersSvc "github.com/anuratyres/ATS-ShopService/internal/service/users"
	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/users/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usersSvc.ErrUserNotFound) {
			h.logger.Warn("GET /users/%d - Not found", id)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersSvc.ErrDuplicateUsername):
			h.logger.Warn("POST /users - Duplicate username %q", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateUsername)

		case errors.Is(err, usersSvc.ErrInvalidInput),
			errors.Is(err, usersSvc.ErrInvalidRole):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /users - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User %s created", result.Username)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersSvc.ErrUserNotFound):
			h.logger.Warn("PUT /users/%d - Not found", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersSvc.ErrDuplicateUsername):
			h.logger.Warn("PUT /users/%d - Duplicate username %q", id, req.Username)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateUsername)

		case errors.Is(err, usersSvc.ErrInvalidInput),
			errors.Is(err, usersSvc.ErrInvalidRole):
			h.logger.Warn("PUT /users/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ChangePassword PATCH /api/v1/users/{id}/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/%d/password - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usersSvc.ErrUserNotFound):
			h.logger.Warn("PATCH /users/%d/password - Not found", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersSvc.ErrInvalidInput):
			h.logger.Warn("PATCH /users/%d/password - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /users/%d/password - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/%d/password - Password changed", id)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// Delete DELETE /api/v1/users/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usersSvc.ErrUserNotFound) {
			h.logger.Warn("DELETE /users/%d - Not found", id)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("DELETE /users/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/%d - Removed", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("users - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	return id, true
}
