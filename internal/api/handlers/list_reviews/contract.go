package list_reviews

import (
	"context"

	"github.com/soltours/booking-service/internal/service/reviews/models"
)

type ReviewsService interface {
	ListByActivity(ctx context.Context, activityID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
