package get_availability

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

// calculateSlots вычисляет занятость каждого слота расписания активности
// Слоты идут в порядке расписания; занятые места - сумма участников
// активных бронирований слота
func calculateSlots(activity *domain.Activity, bookings []*domain.Booking) []Slot {
	result := make([]Slot, len(activity.TimeSlots))

	for i, slotStart := range activity.TimeSlots {
		booked := countBookedSpots(slotStart, bookings)

		remaining := activity.MaxParticipants - booked
		if remaining < 0 {
			remaining = 0
		}

		result[i] = Slot{
			StartTime:      slotStart.String(),
			BookedCount:    booked,
			RemainingSpots: remaining,
			Available:      remaining > 0,
		}
	}

	return result
}

// countBookedSpots подсчитывает занятые места слота
// Учитываются только бронирования, занимающие вместимость
// (pending и confirmed)
func countBookedSpots(slotStart types.TimeString, bookings []*domain.Booking) int {
	count := 0

	for _, booking := range bookings {
		if !booking.OccupiesCapacity() {
			continue
		}
		if booking.StartTime != slotStart {
			continue
		}
		count += booking.Participants.Total()
	}

	return count
}

// filterPastSlots убирает слоты, которые уже отправились, если
// запрошенная дата - сегодня
func filterPastSlots(slots []Slot, date time.Time, now time.Time) []Slot {
	if !isSameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)

	filtered := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if types.TimeString(slot.StartTime).IsAfter(currentTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
