package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	staffSvc "github.com/anuratyres/ATS-ShopService/internal/service/staff"
	"github.com/anuratyres/ATS-ShopService/internal/service/staff/models"
)

// Create POST /api/v1/staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, staffSvc.ErrBayOccupied):
			h.logger.Warn("POST /staff - Bay occupied")
			handlers.RespondError(w, http.StatusConflict, msgBayOccupied)

		case errors.Is(err, staffSvc.ErrInvalidInput),
			errors.Is(err, staffSvc.ErrInvalidStatus),
			errors.Is(err, staffSvc.ErrInvalidBay):
			h.logger.Warn("POST /staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /staff - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Member id=%d created", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/staff?status=&search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListStaffRequest{
		Status: query.Get("status"),
		Search: query.Get("search"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, staffSvc.ErrInvalidStatus) {
			h.logger.Warn("GET /staff - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /staff - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/staff/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, staffSvc.ErrStaffNotFound) {
			h.logger.Warn("GET /staff/%d - Not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("GET /staff/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/staff/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, staffSvc.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/%d - Not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffSvc.ErrBayOccupied):
			h.logger.Warn("PUT /staff/%d - Bay occupied", id)
			handlers.RespondError(w, http.StatusConflict, msgBayOccupied)

		case errors.Is(err, staffSvc.ErrInvalidInput),
			errors.Is(err, staffSvc.ErrInvalidStatus),
			errors.Is(err, staffSvc.ErrInvalidBay):
			h.logger.Warn("PUT /staff/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AssignBay PATCH /api/v1/staff/{id}/bay
func (h *Handler) AssignBay(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req models.AssignBayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/%d/bay - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignBay(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, staffSvc.ErrStaffNotFound):
			h.logger.Warn("PATCH /staff/%d/bay - Not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffSvc.ErrBayOccupied):
			h.logger.Warn("PATCH /staff/%d/bay - Bay occupied", id)
			handlers.RespondError(w, http.StatusConflict, msgBayOccupied)

		case errors.Is(err, staffSvc.ErrInvalidBay):
			h.logger.Warn("PATCH /staff/%d/bay - Invalid bay: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /staff/%d/bay - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/staff/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, staffSvc.ErrStaffNotFound) {
			h.logger.Warn("DELETE /staff/%d - Not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("DELETE /staff/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/%d - Removed", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) staffID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("staff - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return 0, false
	}
	return id, true
}
