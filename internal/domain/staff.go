package domain

import "time"

// StaffStatus is the availability state of a staff member.
type StaffStatus string

const (
	StaffAvailable StaffStatus = "Available"
	StaffBusy      StaffStatus = "Busy"
	StaffOnLeave   StaffStatus = "On Leave"
)

// IsValidStaffStatus reports whether s is a known staff status.
func IsValidStaffStatus(s StaffStatus) bool {
	return s == StaffAvailable || s == StaffBusy || s == StaffOnLeave
}

// StaffFilter narrows staff listings.
type StaffFilter struct {
	Status *StaffStatus
	Search string
}

// StaffMember is a branch employee. Bay is nil when the member is not
// assigned to a service bay; at most one member may hold a bay at a time.
type StaffMember struct {
	ID               int64
	Name             string
	Role             string
	Status           StaffStatus
	Contact          string
	Email            string
	Bay              *string
	EmergencyContact string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
