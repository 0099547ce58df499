package create_booking

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	createBooking "github.com/anuratyres/ATS-ShopService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BranchID      string   `json:"branchId"`
	Category      string   `json:"category"`
	ServiceIDs    []string `json:"serviceIds"`
	Date          string   `json:"date"` // "2026-01-15"
	TimeSlot      string   `json:"timeSlot"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail,omitempty"`
	CustomerPhone string   `json:"customerPhone"`
	VehicleNo     string   `json:"vehicleNo,omitempty"`
	Amount        float64  `json:"amount,omitempty"`
}

// BookedServiceResponse HTTP model for one booked service.
type BookedServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64                   `json:"id"`
	Reference     string                  `json:"reference"`
	BranchID      string                  `json:"branchId"`
	BranchName    string                  `json:"branchName"`
	BranchAddress string                  `json:"branchAddress"`
	BranchPhone   string                  `json:"branchPhone"`
	Category      string                  `json:"category"`
	Services      []BookedServiceResponse `json:"services"`
	Date          string                  `json:"date"`
	TimeSlot      string                  `json:"timeSlot"`
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail,omitempty"`
	CustomerPhone string                  `json:"customerPhone"`
	VehicleNo     string                  `json:"vehicleNo,omitempty"`
	Status        string                  `json:"status"`
	Amount        float64                 `json:"amount"`
	CreatedAt     string                  `json:"createdAt"`
	UpdatedAt     string                  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing the date.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BranchID:   r.BranchID,
		Category:   r.Category,
		ServiceIDs: r.ServiceIDs,
		Date:       date,
		TimeSlot:   r.TimeSlot,
		Customer: domain.Customer{
			Name:      r.CustomerName,
			Email:     r.CustomerEmail,
			Phone:     r.CustomerPhone,
			VehicleNo: r.VehicleNo,
		},
		Amount: r.Amount,
	}, nil
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(res *createBooking.Response) *BookingResponse {
	services := make([]BookedServiceResponse, 0, len(res.Services))
	for _, s := range res.Services {
		services = append(services, BookedServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
		})
	}

	return &BookingResponse{
		ID:            res.ID,
		Reference:     res.Reference,
		BranchID:      res.BranchID,
		BranchName:    res.BranchName,
		BranchAddress: res.BranchAddress,
		BranchPhone:   res.BranchPhone,
		Category:      res.Category,
		Services:      services,
		Date:          res.Date.Format(domain.DateFormat),
		TimeSlot:      res.TimeSlot,
		CustomerName:  res.Customer.Name,
		CustomerEmail: res.Customer.Email,
		CustomerPhone: res.Customer.Phone,
		VehicleNo:     res.Customer.VehicleNo,
		Status:        string(res.Status),
		Amount:        res.Amount,
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     res.UpdatedAt.Format(time.RFC3339),
	}
}
