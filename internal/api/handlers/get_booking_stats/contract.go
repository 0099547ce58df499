package get_booking_stats

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/bookings/models"
)

type BookingsService interface {
	Stats(ctx context.Context) (*models.BookingStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
