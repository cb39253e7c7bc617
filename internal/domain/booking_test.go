package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltours/booking-service/pkg/types"
)

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		occupies    bool
		cancellable bool
		modifiable  bool
		reviewable  bool
	}{
		{StatusPending, true, true, true, false},
		{StatusConfirmed, true, true, true, false},
		{StatusCompleted, false, false, false, true},
		{StatusCancelled, false, false, false, false},
		{StatusNoShow, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}

			assert.Equal(t, tt.occupies, b.OccupiesCapacity())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.modifiable, b.CanBeModified())
			assert.Equal(t, tt.reviewable, b.CanBeReviewed())
		})
	}
}

func TestBookingScheduledStartAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:30"),
	}

	start, err := b.ScheduledStartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC), start)
}

func TestBookingScheduledStartAt_InvalidTime(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("garbage"),
	}

	_, err := b.ScheduledStartAt()
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}
