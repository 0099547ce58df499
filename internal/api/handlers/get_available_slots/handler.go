package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	"github.com/anuratyres/ATS-ShopService/internal/domain"
	getAvailableSlots "github.com/anuratyres/ATS-ShopService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgBranchNotFound = "branch not found"
	msgDateInPast     = "date cannot be in the past"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID := mux.Vars(r)["branchId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /branches/%s/available-slots - Missing date", branchID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /branches/%s/available-slots - Invalid date %q: %v", branchID, dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BranchID: branchID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /branches/%s/available-slots - Branch not found", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /branches/%s/available-slots - Date in past: %s", branchID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /branches/%s/available-slots - Invalid input: %v", branchID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /branches/%s/available-slots - Failed: %v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
