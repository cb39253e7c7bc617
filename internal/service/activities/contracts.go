package activities

import (
	"context"

	"github.com/soltours/booking-service/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Activity, error)
	List(ctx context.Context, filter domain.ActivitiesFilter) ([]*domain.Activity, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	GetByActivityID(ctx context.Context, activityID int64) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
