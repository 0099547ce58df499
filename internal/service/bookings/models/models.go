package models

import (
	"errors"
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is unknown.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// ListBookingsRequest carries the list filters from the query string.
type ListBookingsRequest struct {
	Status   *string    `json:"status,omitempty"`
	BranchID *string    `json:"branchId,omitempty"`
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
	Search   string     `json:"search,omitempty"`
	Limit    uint64     `json:"limit,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		BranchID: r.BranchID,
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		Search:   r.Search,
		Limit:    r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest carries a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookedServiceResponse is one service snapshot on a booking.
type BookedServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// BookingResponse is the public booking representation.
type BookingResponse struct {
	ID            int64                   `json:"id"`
	Reference     string                  `json:"reference"`
	BranchID      string                  `json:"branchId"`
	BranchName    string                  `json:"branchName"`
	BranchAddress string                  `json:"branchAddress"`
	BranchPhone   string                  `json:"branchPhone"`
	Category      string                  `json:"category"`
	Services      []BookedServiceResponse `json:"services"`
	Date          string                  `json:"date"` // "2026-01-15"
	TimeSlot      string                  `json:"timeSlot"`
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail,omitempty"`
	CustomerPhone string                  `json:"customerPhone"`
	VehicleNo     string                  `json:"vehicleNo,omitempty"`
	Status        string                  `json:"status"`
	Amount        float64                 `json:"amount"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// BookingListResponse wraps a booking list.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// BookingStatsResponse is the per-status booking breakdown.
type BookingStatsResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Waiting    int `json:"waiting"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// FromDomainBooking converts a domain booking to the response model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]BookedServiceResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, BookedServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
		})
	}

	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		BranchID:      b.BranchID,
		BranchName:    b.BranchName,
		BranchAddress: b.BranchAddress,
		BranchPhone:   b.BranchPhone,
		Category:      b.Category,
		Services:      services,
		Date:          b.Date.Format(domain.DateFormat),
		TimeSlot:      b.TimeSlot,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		CustomerPhone: b.Customer.Phone,
		VehicleNo:     b.Customer.VehicleNo,
		Status:        string(b.Status),
		Amount:        b.Amount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList converts a domain booking slice to the list response.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// FromDomainStats converts domain stats to the response model.
func FromDomainStats(s *domain.BookingStats) *BookingStatsResponse {
	return &BookingStatsResponse{
		Total:      s.Total,
		Pending:    s.Pending,
		Waiting:    s.Waiting,
		InProgress: s.InProgress,
		Completed:  s.Completed,
		Cancelled:  s.Cancelled,
	}
}

// ToDomainBookingStatus parses a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
