package get_cancellation_policy

import (
	"context"

	"github.com/soltours/booking-service/internal/service/policy/models"
)

type PolicyService interface {
	GetForActivityResponse(ctx context.Context, activityID *int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
