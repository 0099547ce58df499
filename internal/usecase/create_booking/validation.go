package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// validateRequest checks the form fields before any catalog or storage work.
func validateRequest(req *Request) error {
	if req.BranchID == "" {
		return fmt.Errorf("%w: branchId is required", ErrInvalidInput)
	}

	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}

	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	return nil
}

func validateCustomer(c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(c.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(c.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if c.Email != "" {
		if len(c.Email) > domain.MaxEmailLength || !strings.Contains(c.Email, "@") {
			return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
		}
	}

	if len(c.VehicleNo) > domain.MaxVehicleNoLength {
		return fmt.Errorf("%w: vehicle number is too long", ErrInvalidInput)
	}

	return nil
}

// resolveServices maps the requested service ids to catalog snapshots and
// checks each belongs to the requested category.
func resolveServices(category string, serviceIDs []string) ([]domain.BookedService, error) {
	services := make([]domain.BookedService, 0, len(serviceIDs))
	seen := make(map[string]bool, len(serviceIDs))

	for _, id := range serviceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		svc := domain.ServiceByID(id)
		if svc == nil {
			return nil, fmt.Errorf("%w: service %q", ErrServiceNotFound, id)
		}
		if svc.Category != category {
			return nil, fmt.Errorf("%w: service %q is not in category %q", ErrServiceNotFound, id, category)
		}

		services = append(services, domain.BookedService{
			ID:       svc.ID,
			Name:     svc.Name,
			Category: svc.Category,
		})
	}

	return services, nil
}

// countSlotBookings counts bookings holding a spot in the given slot.
// Cancelled bookings release their spot.
func countSlotBookings(timeSlot string, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.TimeSlot == timeSlot && b.CountsTowardCapacity() {
			count++
		}
	}
	return count
}

// isDateInPast compares calendar days only, ignoring the time of day.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
