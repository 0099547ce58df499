package bookings

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// BookingRepository is the bookings storage surface the service needs.
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error
	Delete(ctx context.Context, reference string) error
	StatsSummary(ctx context.Context) (*domain.BookingStats, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
