package policy

import (
	"context"

	"github.com/soltours/booking-service/internal/domain"
)

// PolicyRepository интерфейс репозитория политик отмены
type PolicyRepository interface {
	GetWithHierarchy(ctx context.Context, activityID *int64) (*domain.CancellationPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
