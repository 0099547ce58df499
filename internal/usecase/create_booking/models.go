package create_booking

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// Request carries the booking form as submitted by the customer.
type Request struct {
	BranchID   string
	Category   string
	ServiceIDs []string
	Date       time.Time
	TimeSlot   string
	Customer   domain.Customer
	Amount     float64
}

// Response is the created booking.
type Response struct {
	ID        int64
	Reference string

	BranchID      string
	BranchName    string
	BranchAddress string
	BranchPhone   string

	Category string
	Services []domain.BookedService

	Date     time.Time
	TimeSlot string

	Customer domain.Customer

	Status domain.BookingStatus
	Amount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		Reference:     b.Reference,
		BranchID:      b.BranchID,
		BranchName:    b.BranchName,
		BranchAddress: b.BranchAddress,
		BranchPhone:   b.BranchPhone,
		Category:      b.Category,
		Services:      b.Services,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Customer:      b.Customer,
		Status:        b.Status,
		Amount:        b.Amount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
