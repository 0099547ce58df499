package get_available_slots

import "time"

// Request identifies the branch and date to check.
type Request struct {
	BranchID string
	Date     time.Time
}

// Slot is one schedule entry with its remaining capacity.
type Slot struct {
	Time           string
	AvailableSpots int
	TotalSpots     int
}

// Response lists the slots still bookable on the requested date.
type Response struct {
	BranchID string
	Date     time.Time
	Slots    []Slot
}
