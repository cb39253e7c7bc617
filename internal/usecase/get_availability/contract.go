package get_availability

import (
	"context"
	"time"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/internal/infra/cache/availability"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByActivityWithFilter(ctx context.Context, filter domain.ActivityBookingsFilter) ([]*domain.Booking, error)
}

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// AvailabilityCache интерфейс кэша снимков доступности
type AvailabilityCache interface {
	Get(ctx context.Context, activityID int64, date string) (*availability.DaySnapshot, error)
	Set(ctx context.Context, snapshot *availability.DaySnapshot) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
