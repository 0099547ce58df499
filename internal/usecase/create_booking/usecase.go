package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// UseCase creates a booking after an atomic slot-capacity check.
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new create-booking usecase.
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the form, re-checks slot capacity inside a serializable
// transaction and inserts the booking. The in-transaction re-check is the
// authoritative one: two concurrent requests for the last spot cannot both
// pass it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: branch=%s, category=%s, date=%s, slot=%s",
		req.BranchID, req.Category, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Form validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the branch from the catalog.
	branch := domain.BranchByID(req.BranchID)
	if branch == nil {
		uc.logger.Warn("CreateBooking: branch id=%s not found", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 3. Check the category is offered at this branch.
	if !domain.CategoryAvailableAtBranch(branch, req.Category) {
		uc.logger.Warn("CreateBooking: category %q not available at branch id=%s", req.Category, req.BranchID)
		return nil, ErrCategoryNotAvailable
	}

	// 4. Resolve the requested services to catalog snapshots.
	services, err := resolveServices(req.Category, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("CreateBooking: service resolution failed: %v", err)
		return nil, err
	}

	// 5. Date must not be in the past, slot must be in the fixed schedule.
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if !domain.IsValidTimeSlot(req.TimeSlot) {
		uc.logger.Warn("CreateBooking: time slot %q not in schedule", req.TimeSlot)
		return nil, ErrInvalidTimeSlot
	}

	var result *domain.Booking

	// 6. Capacity check and insert in one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. All bookings at this branch on this date, rows locked.
		filter := domain.BookingFilter{
			BranchID: &req.BranchID,
			DateFrom: &req.Date,
			DateTo:   &req.Date,
		}
		bookings, err := uc.bookingRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 6.2. Count spots taken in the requested slot.
		taken := countSlotBookings(req.TimeSlot, bookings)
		if taken >= branch.MaxBookingsPerSlot {
			uc.logger.Warn("CreateBooking: slot %s full, %d/%d spots taken",
				req.TimeSlot, taken, branch.MaxBookingsPerSlot)
			return ErrSlotNotAvailable
		}
		uc.logger.Info("CreateBooking: slot %s available, %d/%d spots taken",
			req.TimeSlot, taken, branch.MaxBookingsPerSlot)

		// 6.3. Insert with branch snapshot and server-assigned reference.
		booking := &domain.Booking{
			Reference:     newReference(),
			BranchID:      branch.ID,
			BranchName:    branch.Name,
			BranchAddress: branch.Address,
			BranchPhone:   branch.Phone,
			Category:      req.Category,
			Services:      services,
			Date:          req.Date,
			TimeSlot:      req.TimeSlot,
			Customer:      req.Customer,
			Status:        domain.StatusPending,
			Amount:        req.Amount,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s (id=%d)", result.Reference, result.ID)

	return toResponse(result), nil
}

// newReference builds a public booking reference like "BK-4F9A21C3".
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.BookingRefPrefix + id[:8]
}
