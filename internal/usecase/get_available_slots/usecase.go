package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// UseCase computes the bookable slots for a branch and date.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new get-available-slots usecase.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the slots with at least one free spot on the requested
// date. This is an advisory read for the booking form; the create-booking
// transaction re-checks capacity authoritatively.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%s, date=%s",
		req.BranchID, req.Date.Format(domain.DateFormat))

	branch := domain.BranchByID(req.BranchID)
	if branch == nil {
		uc.logger.Warn("GetAvailableSlots: branch id=%s not found", req.BranchID)
		return nil, ErrBranchNotFound
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	filter := domain.BookingFilter{
		BranchID: &req.BranchID,
		DateFrom: &req.Date,
		DateTo:   &req.Date,
	}
	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots := AvailableSlots(branch.MaxBookingsPerSlot, bookings)
	uc.logger.Info("GetAvailableSlots: branch=%s date=%s, %d/%d slots bookable",
		req.BranchID, req.Date.Format(domain.DateFormat), len(slots), len(domain.TimeSlots))

	return &Response{
		BranchID: req.BranchID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
