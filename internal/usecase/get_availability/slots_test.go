package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

func testActivity() *domain.Activity {
	return &domain.Activity{
		ID:              1,
		MaxParticipants: 10,
		TimeSlots: []types.TimeString{
			"09:00", "13:00", "16:30",
		},
	}
}

func booking(start types.TimeString, status domain.BookingStatus, total int) *domain.Booking {
	return &domain.Booking{
		ActivityID:   1,
		StartTime:    start,
		Status:       status,
		Participants: domain.Participants{Adults: total},
	}
}

func TestCalculateSlots_NoBookings(t *testing.T) {
	slots := calculateSlots(testActivity(), nil)

	assert.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, testActivity().TimeSlots[i].String(), slot.StartTime)
		assert.Equal(t, 0, slot.BookedCount)
		assert.Equal(t, 10, slot.RemainingSpots)
		assert.True(t, slot.Available)
	}
}

func TestCalculateSlots_CountsOnlyCapacityStatuses(t *testing.T) {
	bookings := []*domain.Booking{
		booking("09:00", domain.StatusConfirmed, 4),
		booking("09:00", domain.StatusPending, 2),
		booking("09:00", domain.StatusCancelled, 5),
		booking("09:00", domain.StatusNoShow, 3),
		booking("09:00", domain.StatusCompleted, 2),
		booking("13:00", domain.StatusConfirmed, 1),
	}

	slots := calculateSlots(testActivity(), bookings)

	// 09:00: только confirmed(4) + pending(2)
	assert.Equal(t, 6, slots[0].BookedCount)
	assert.Equal(t, 4, slots[0].RemainingSpots)
	assert.True(t, slots[0].Available)

	assert.Equal(t, 1, slots[1].BookedCount)
	assert.Equal(t, 9, slots[1].RemainingSpots)

	assert.Equal(t, 0, slots[2].BookedCount)
}

func TestCalculateSlots_FullSlotIsUnavailable(t *testing.T) {
	bookings := []*domain.Booking{
		booking("09:00", domain.StatusConfirmed, 10),
	}

	slots := calculateSlots(testActivity(), bookings)

	assert.Equal(t, 10, slots[0].BookedCount)
	assert.Equal(t, 0, slots[0].RemainingSpots)
	assert.False(t, slots[0].Available)
}

func TestCalculateSlots_OverbookedClampsToZero(t *testing.T) {
	// Вместимость могла уменьшиться после подтверждённых бронирований
	bookings := []*domain.Booking{
		booking("09:00", domain.StatusConfirmed, 8),
		booking("09:00", domain.StatusConfirmed, 5),
	}

	slots := calculateSlots(testActivity(), bookings)

	assert.Equal(t, 13, slots[0].BookedCount)
	assert.Equal(t, 0, slots[0].RemainingSpots)
	assert.False(t, slots[0].Available)
}

func TestFilterPastSlots_OtherDayKeepsEverything(t *testing.T) {
	slots := []Slot{
		{StartTime: "09:00"},
		{StartTime: "13:00"},
	}
	date := time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 15, 14, 0, 0, 0, time.UTC)

	assert.Len(t, filterPastSlots(slots, date, now), 2)
}

func TestFilterPastSlots_TodayDropsDepartedSlots(t *testing.T) {
	slots := []Slot{
		{StartTime: "09:00"},
		{StartTime: "13:00"},
		{StartTime: "16:30"},
	}
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 15, 14, 0, 0, 0, time.UTC)

	filtered := filterPastSlots(slots, date, now)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "16:30", filtered[0].StartTime)
}

func TestFilterPastSlots_SlotAtCurrentMinuteIsDropped(t *testing.T) {
	slots := []Slot{{StartTime: "14:00"}}
	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 15, 14, 0, 0, 0, time.UTC)

	assert.Empty(t, filterPastSlots(slots, date, now))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 7, 15, 23, 30, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошедшим даже поздно вечером
	assert.False(t, isDateInPast(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC), now))
}
