package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/booking"
	"github.com/anuratyres/ATS-ShopService/internal/service/bookings/models"
)

// Service handles booking reads and lifecycle changes. Creation lives in the
// create-booking usecase because it needs a transaction.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a new bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List fetches bookings with optional status, branch, period and search
// filters.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, search=%q", req.Search)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByReference fetches a booking by its public reference.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking %s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus sets the booking status. Any valid status is reachable from
// any other, and repeating the current status succeeds without effect.
func (s *Service) UpdateStatus(ctx context.Context, reference string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking %s -> %s", reference, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for booking %s", req.Status, reference)
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, reference, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-read booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: UpdateStatus - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking %s is now %s", reference, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, reference string) error {
	s.logger.Info("Delete: removing booking %s", reference)

	if err := s.bookingRepo.Delete(ctx, reference); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking %s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking %s: %v", reference, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking %s removed", reference)
	return nil
}

// Stats returns the per-status booking counts for the dashboard.
func (s *Service) Stats(ctx context.Context) (*models.BookingStatsResponse, error) {
	stats, err := s.bookingRepo.StatsSummary(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}
