package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

func slotByTime(slots []Slot, t string) *Slot {
	for i := range slots {
		if slots[i].Time == t {
			return &slots[i]
		}
	}
	return nil
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	slots := AvailableSlots(3, nil)

	assert.Len(t, slots, len(domain.TimeSlots))
	for _, s := range slots {
		assert.Equal(t, 3, s.AvailableSpots)
		assert.Equal(t, 3, s.TotalSpots)
	}
}

func TestAvailableSlotsFullSlotDropped(t *testing.T) {
	bookings := []*domain.Booking{
		{TimeSlot: "09:00", Status: domain.StatusPending},
		{TimeSlot: "09:00", Status: domain.StatusCompleted},
		{TimeSlot: "09:00", Status: domain.StatusWaiting},
		{TimeSlot: "09:30", Status: domain.StatusPending},
	}

	slots := AvailableSlots(3, bookings)

	assert.Nil(t, slotByTime(slots, "09:00"), "full slot must not be offered")

	halfFull := slotByTime(slots, "09:30")
	require.NotNil(t, halfFull)
	assert.Equal(t, 2, halfFull.AvailableSpots)

	untouched := slotByTime(slots, "10:00")
	require.NotNil(t, untouched)
	assert.Equal(t, 3, untouched.AvailableSpots)
}

func TestAvailableSlotsCancelledReleasesSpot(t *testing.T) {
	bookings := []*domain.Booking{
		{TimeSlot: "14:00", Status: domain.StatusPending},
		{TimeSlot: "14:00", Status: domain.StatusPending},
		{TimeSlot: "14:00", Status: domain.StatusCancelled},
	}

	slots := AvailableSlots(2, bookings)

	assert.Nil(t, slotByTime(slots, "14:00"), "two live bookings fill a 2-spot slot")

	slots = AvailableSlots(3, bookings)
	s := slotByTime(slots, "14:00")
	require.NotNil(t, s)
	assert.Equal(t, 1, s.AvailableSpots, "cancelled booking holds no spot")
}
