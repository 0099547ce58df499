package get_available_slots

import (
	"github.com/anuratyres/ATS-ShopService/internal/domain"
	getAvailableSlots "github.com/anuratyres/ATS-ShopService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model for one available slot.
type SlotResponse struct {
	Time           string `json:"time"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BranchID string         `json:"branchId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(res *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(res.Slots))
	for _, s := range res.Slots {
		slots = append(slots, SlotResponse{
			Time:           s.Time,
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
		})
	}

	return &AvailableSlotsResponse{
		BranchID: res.BranchID,
		Date:     res.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
