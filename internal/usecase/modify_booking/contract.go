package modify_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/internal/integrations/notify"
	"github.com/soltours/booking-service/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByActivityWithFilter(ctx context.Context, filter domain.ActivityBookingsFilter) ([]*domain.Booking, error)
	UpdateDetails(ctx context.Context, id int64, date time.Time, startTime string, participants domain.Participants, totalAmount decimal.Decimal) error
}

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// PaymentRepository интерфейс репозитория платёжных записей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// PolicyService интерфейс сервиса политик отмены
type PolicyService interface {
	GetForActivity(ctx context.Context, activityID *int64) (*domain.CancellationPolicy, error)
}

// PaymentsClient интерфейс клиента платёжного провайдера
type PaymentsClient interface {
	CaptureWithGracefulDegradation(ctx context.Context, reference string, amount decimal.Decimal, currency, idempotencyKey string) (*payments.TransactionResponse, error)
	RefundWithGracefulDegradation(ctx context.Context, reference string, amount decimal.Decimal, currency, idempotencyKey string) (*payments.TransactionResponse, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendBestEffort(ctx context.Context, n *notify.Notification)
}

// AvailabilityCache интерфейс кэша снимков доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, activityID int64, date string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
