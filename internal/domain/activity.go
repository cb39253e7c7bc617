package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/pkg/types"
)

// ActivityStatus represents the catalog status of an activity
type ActivityStatus string

const (
	ActivityActive   ActivityStatus = "active"
	ActivityInactive ActivityStatus = "inactive"
)

// Activity represents a bookable activity in the catalog
// (tours, water sports, excursions)
type Activity struct {
	ID              int64
	Slug            string
	Title           string
	Category        string
	Location        string
	DurationMinutes int

	// Per-participant-type prices. Adult price is mandatory;
	// child and senior prices are optional - a nil price means the
	// activity does not admit that participant type.
	AdultPrice  decimal.Decimal
	ChildPrice  *decimal.Decimal
	SeniorPrice *decimal.Decimal

	// Capacity per time slot
	MaxParticipants int

	// Daily departure times, e.g. ["09:00", "13:00", "16:30"]
	TimeSlots []types.TimeString

	Status    ActivityStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the activity accepts new bookings
func (a *Activity) IsBookable() bool {
	return a.Status == ActivityActive
}

// HasTimeSlot returns true if the activity departs at the given time
func (a *Activity) HasTimeSlot(t types.TimeString) bool {
	for _, slot := range a.TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// PriceTable returns the per-participant-type price table of the activity
// Types without a configured price are absent from the table
func (a *Activity) PriceTable() PriceTable {
	table := PriceTable{
		ParticipantAdult: a.AdultPrice,
	}
	if a.ChildPrice != nil {
		table[ParticipantChild] = *a.ChildPrice
	}
	if a.SeniorPrice != nil {
		table[ParticipantSenior] = *a.SeniorPrice
	}
	return table
}

// ActivitiesFilter фильтр для выборки активностей из каталога
type ActivitiesFilter struct {
	Category      *string // Фильтр по категории (опционально)
	IncludeHidden bool    // Включать ли неактивные активности
}
