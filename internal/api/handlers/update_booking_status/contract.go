package update_booking_status

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, reference string, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
