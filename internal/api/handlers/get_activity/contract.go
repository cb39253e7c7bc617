package get_activity

import (
	"context"

	"github.com/soltours/booking-service/internal/service/activities/models"
)

type ActivitiesService interface {
	GetBySlug(ctx context.Context, slug string) (*models.ActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
