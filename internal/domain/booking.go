package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents an activity booking in the system
type Booking struct {
	ID           int64
	Reference    string // User-facing booking reference, e.g. "BK-6f3a9c2e"
	UserID       int64
	ActivityID   int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Participants Participants
	TotalAmount  decimal.Decimal
	Status       BookingStatus

	// Denormalized data for history
	ActivityTitle string
	Notes         *string

	CancellationReason *string
	RefundAmount       *decimal.Decimal
	CancellationFee    *decimal.Decimal
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the booking counts against slot capacity
func (b *Booking) OccupiesCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeModified returns true if the booking can be modified
func (b *Booking) CanBeModified() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeReviewed returns true if the booking is eligible for a review
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusCompleted
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ScheduledStartAt returns the full timestamp the activity starts at
func (b *Booking) ScheduledStartAt() (time.Time, error) {
	return b.StartTime.OnDate(b.BookingDate)
}

// ActivityBookingsFilter фильтр для получения бронирований активности
type ActivityBookingsFilter struct {
	ActivityID      int64             // Обязательный параметр
	Date            *time.Time        // Фильтр по дате (опционально)
	StartTime       *types.TimeString // Фильтр по слоту (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отменённые и no-show
}
