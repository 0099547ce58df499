package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	"github.com/anuratyres/ATS-ShopService/internal/service/bookings"
)

const msgBookingNotFound = "booking not found"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	if err := h.service.Delete(r.Context(), reference); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/%s - Not found", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/%s - Failed: %v", reference, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/%s - Removed", reference)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
