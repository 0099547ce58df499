package create_booking

import (
	"errors"
	"net/http"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	createBooking "github.com/anuratyres/ATS-ShopService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid booking date, expected YYYY-MM-DD"
	msgSlotNotAvailable     = "selected time slot is no longer available"
	msgBranchNotFound       = "branch not found"
	msgServiceNotFound      = "service not found"
	msgCategoryNotAvailable = "category is not available at this branch"
	msgInvalidBookingDate   = "booking date cannot be in the past"
	msgInvalidTimeSlot      = "invalid time slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: branch=%s, slot=%s", req.BranchID, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBranchNotFound):
			h.logger.Warn("POST /bookings - Branch not found: branch=%s", req.BranchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: branch=%s, category=%s", req.BranchID, req.Category)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrCategoryNotAvailable):
			h.logger.Warn("POST /bookings - Category not available: branch=%s, category=%s", req.BranchID, req.Category)
			handlers.RespondBadRequest(w, msgCategoryNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: branch=%s, date=%s", req.BranchID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: branch=%s, slot=%s", req.BranchID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: branch=%s, error=%v", req.BranchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: reference=%s, branch=%s, slot=%s",
		result.Reference, req.BranchID, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
