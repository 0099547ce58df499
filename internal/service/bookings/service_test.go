package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	bookingRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/booking"
	"github.com/anuratyres/ATS-ShopService/internal/service/bookings/models"
	"github.com/anuratyres/ATS-ShopService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeBookingRepo is an in-memory BookingRepository keyed by reference.
type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*domain.Booking{}}
	for _, b := range bookings {
		r.bookings[b.Reference] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := r.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, reference string, status domain.BookingStatus) error {
	b, ok := r.bookings[reference]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, reference string) error {
	if _, ok := r.bookings[reference]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, reference)
	return nil
}

func (r *fakeBookingRepo) StatsSummary(_ context.Context) (*domain.BookingStats, error) {
	stats := &domain.BookingStats{}
	for _, b := range r.bookings {
		stats.Total++
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusWaiting:
			stats.Waiting++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func testBooking(reference string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		Reference: reference,
		BranchID:  "1",
		Category:  domain.CategoryAnuraTyres,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "09:00",
		Customer:  domain.Customer{Name: "Kasun Perera", Phone: "0771234567"},
		Status:    status,
	}
}

func TestUpdateStatusAnyTransition(t *testing.T) {
	// No transition graph: Completed back to Pending is legal.
	repo := newFakeBookingRepo(testBooking("BK-AAAA1111", domain.StatusCompleted))
	svc := NewService(repo, nopLogger{})

	res, err := svc.UpdateStatus(context.Background(), "BK-AAAA1111", &models.UpdateStatusRequest{Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", res.Status)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("BK-AAAA1111", domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	res, err := svc.UpdateStatus(context.Background(), "BK-AAAA1111", &models.UpdateStatusRequest{Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", res.Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("BK-AAAA1111", domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "BK-AAAA1111", &models.UpdateStatusRequest{Status: "Archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusUnknownReference(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "BK-GHOST000", &models.UpdateStatusRequest{Status: "Pending"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListStatusFilter(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking("BK-AAAA1111", domain.StatusPending),
		testBooking("BK-BBBB2222", domain.StatusCompleted),
	)
	svc := NewService(repo, nopLogger{})

	res, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("Completed")})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "BK-BBBB2222", res.Bookings[0].Reference)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("Archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking("BK-AAAA1111", domain.StatusPending),
		testBooking("BK-BBBB2222", domain.StatusPending),
		testBooking("BK-CCCC3333", domain.StatusCancelled),
	)
	svc := NewService(repo, nopLogger{})

	res, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Pending)
	assert.Equal(t, 1, res.Cancelled)
}

func TestDelete(t *testing.T) {
	repo := newFakeBookingRepo(testBooking("BK-AAAA1111", domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "BK-AAAA1111"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "BK-AAAA1111"), ErrBookingNotFound)
}
