package inventory

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	inventorySvc "github.com/anuratyres/ATS-ShopService/internal/service/inventory"
	"github.com/anuratyres/ATS-ShopService/internal/service/inventory/models"
)

// Create POST /api/v1/inventory
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, inventorySvc.ErrInvalidInput) {
			h.logger.Warn("POST /inventory - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /inventory - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /inventory - Item %s created", result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/inventory?status=&category=&search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListItemsRequest{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /inventory - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/inventory/{reference}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	result, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, inventorySvc.ErrItemNotFound) {
			h.logger.Warn("GET /inventory/%s - Not found", reference)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("GET /inventory/%s - Failed: %v", reference, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/inventory/{reference}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /inventory/%s - Invalid request body: %v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), reference, &req)
	if err != nil {
		switch {
		case errors.Is(err, inventorySvc.ErrItemNotFound):
			h.logger.Warn("PUT /inventory/%s - Not found", reference)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, inventorySvc.ErrInvalidInput):
			h.logger.Warn("PUT /inventory/%s - Invalid input: %v", reference, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /inventory/%s - Failed: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Restock POST /api/v1/inventory/{reference}/restock
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req models.RestockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory/%s/restock - Invalid request body: %v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Restock(r.Context(), reference, &req)
	if err != nil {
		switch {
		case errors.Is(err, inventorySvc.ErrItemNotFound):
			h.logger.Warn("POST /inventory/%s/restock - Not found", reference)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, inventorySvc.ErrInvalidQuantity):
			h.logger.Warn("POST /inventory/%s/restock - Invalid quantity %d", reference, req.Quantity)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /inventory/%s/restock - Failed: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory/%s/restock - Now at %d", reference, result.Stock)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/inventory/{reference}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	if err := h.service.Delete(r.Context(), reference); err != nil {
		if errors.Is(err, inventorySvc.ErrItemNotFound) {
			h.logger.Warn("DELETE /inventory/%s - Not found", reference)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /inventory/%s - Failed: %v", reference, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /inventory/%s - Removed", reference)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
