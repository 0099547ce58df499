package get_available_slots

import "github.com/anuratyres/ATS-ShopService/internal/domain"

// AvailableSlots filters the fixed daily schedule down to the slots with at
// least one free spot. Cancelled bookings do not hold a spot. When bookings
// is nil (branch or date not yet chosen) the full schedule comes back
// untouched, so a half-filled form still shows every slot.
func AvailableSlots(maxPerSlot int, bookings []*domain.Booking) []Slot {
	counts := make(map[string]int, len(domain.TimeSlots))
	for _, b := range bookings {
		if b.CountsTowardCapacity() {
			counts[b.TimeSlot]++
		}
	}

	slots := make([]Slot, 0, len(domain.TimeSlots))
	for _, t := range domain.TimeSlots {
		taken := counts[t]
		if taken >= maxPerSlot {
			continue
		}
		slots = append(slots, Slot{
			Time:           t,
			AvailableSpots: maxPerSlot - taken,
			TotalSpots:     maxPerSlot,
		})
	}

	return slots
}
