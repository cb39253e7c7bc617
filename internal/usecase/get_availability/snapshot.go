package get_availability

import (
	"time"

	"github.com/soltours/booking-service/internal/infra/cache/availability"
)

// fromSnapshot конвертирует кэшированный снимок в слоты ответа
func fromSnapshot(snapshot *availability.DaySnapshot) []Slot {
	slots := make([]Slot, 0, len(snapshot.Slots))
	for _, s := range snapshot.Slots {
		slots = append(slots, Slot{
			StartTime:      s.StartTime,
			BookedCount:    s.BookedCount,
			RemainingSpots: s.RemainingSpots,
			Available:      s.Available,
		})
	}
	return slots
}

// toSnapshot конвертирует слоты в кэшируемый снимок
func toSnapshot(activityID int64, date string, slots []Slot, now time.Time) *availability.DaySnapshot {
	snapshot := &availability.DaySnapshot{
		ActivityID: activityID,
		Date:       date,
		Slots:      make([]availability.SlotAvailability, 0, len(slots)),
		ComputedAt: now,
	}

	for _, s := range slots {
		snapshot.Slots = append(snapshot.Slots, availability.SlotAvailability{
			StartTime:      s.StartTime,
			BookedCount:    s.BookedCount,
			RemainingSpots: s.RemainingSpots,
			Available:      s.Available,
		})
	}

	return snapshot
}
