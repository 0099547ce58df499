package get_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	"github.com/anuratyres/ATS-ShopService/internal/domain"
	"github.com/anuratyres/ATS-ShopService/internal/service/bookings"
	"github.com/anuratyres/ATS-ShopService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "invalid status filter"
	msgInvalidDate   = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidLimit  = "invalid limit"
)

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

// Handle GET /api/v1/bookings?status=&branchId=&dateFrom=&dateTo=&search=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		Search: query.Get("search"),
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("branchId"); v != "" {
		req.BranchID = &v
	}

	if v := query.Get("dateFrom"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid dateFrom %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateFrom = &date
	}
	if v := query.Get("dateTo"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid dateTo %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateTo = &date
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid limit %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
