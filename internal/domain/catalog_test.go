package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchByID(t *testing.T) {
	branch := BranchByID("1")
	require.NotNil(t, branch)
	assert.Equal(t, "Pannipitiya Branch", branch.Name)
	assert.Equal(t, 3, branch.MaxBookingsPerSlot)

	assert.Nil(t, BranchByID("99"))
}

func TestCategoryAvailableAtBranch(t *testing.T) {
	full := BranchByID("1")
	tyresOnly := BranchByID("2")
	require.NotNil(t, full)
	require.NotNil(t, tyresOnly)

	// Every category at the full-service branch.
	for _, c := range ServiceCategories {
		assert.True(t, CategoryAvailableAtBranch(full, c.ID), c.ID)
	}

	// Only tyres elsewhere.
	assert.True(t, CategoryAvailableAtBranch(tyresOnly, CategoryAnuraTyres))
	for _, c := range ServiceCategories {
		if c.ID == CategoryAnuraTyres {
			continue
		}
		assert.False(t, CategoryAvailableAtBranch(tyresOnly, c.ID), c.ID)
	}
}

func TestTimeSlotsSchedule(t *testing.T) {
	assert.Len(t, TimeSlots, 21)
	assert.Equal(t, "08:30", TimeSlots[0])
	assert.Equal(t, "19:00", TimeSlots[len(TimeSlots)-1])

	assert.True(t, IsValidTimeSlot("09:00"))
	assert.False(t, IsValidTimeSlot("12:30"), "lunch break is not bookable")
	assert.False(t, IsValidTimeSlot("23:30"))
}

func TestCountsTowardCapacity(t *testing.T) {
	for _, status := range AllBookingStatuses {
		b := &Booking{Status: status}
		if status == StatusCancelled {
			assert.False(t, b.CountsTowardCapacity())
		} else {
			assert.True(t, b.CountsTowardCapacity(), string(status))
		}
	}
}
