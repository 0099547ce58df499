package domain

import "time"

// BookingStatus represents the lifecycle status of a booking.
// Any status is reachable from any other; there is no transition graph.
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusWaiting    BookingStatus = "Waiting"
	StatusInProgress BookingStatus = "In Progress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

// AllBookingStatuses lists every valid booking status.
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusWaiting,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// IsValidBookingStatus reports whether s is a known status.
func IsValidBookingStatus(s BookingStatus) bool {
	for _, valid := range AllBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// BookedService is the snapshot of a catalog service stored on a booking.
type BookedService struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Customer holds the customer contact details embedded in a booking.
type Customer struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	VehicleNo string `json:"vehicleNo"`
}

// Booking represents a service appointment at a branch.
// Branch and service data are denormalized snapshots so the booking history
// survives catalog changes.
type Booking struct {
	ID        int64
	Reference string // server-assigned, e.g. "BK-4F9A21C3"

	BranchID      string
	BranchName    string
	BranchAddress string
	BranchPhone   string

	Category string
	Services []BookedService

	Date     time.Time // calendar date, no time component
	TimeSlot string    // one of the fixed half-hour slots

	Customer Customer

	Status BookingStatus
	Amount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity reports whether the booking occupies its time slot.
// Only cancelled bookings release capacity.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status != StatusCancelled
}

// BookingFilter filters booking listings.
type BookingFilter struct {
	Status   *BookingStatus // exact status match (optional)
	BranchID *string        // restrict to a branch (optional)
	DateFrom *time.Time     // period start, inclusive (optional)
	DateTo   *time.Time     // period end, inclusive (optional)
	Search   string         // case-insensitive substring over customer, reference, vehicle
	Limit    uint64         // 0 = no limit
}

// BookingStats is the status breakdown served by the stats endpoint.
type BookingStats struct {
	Total      int
	Pending    int
	Waiting    int
	InProgress int
	Completed  int
	Cancelled  int
}
