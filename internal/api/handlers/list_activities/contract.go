package list_activities

import (
	"context"

	"github.com/soltours/booking-service/internal/service/activities/models"
)

type ActivitiesService interface {
	List(ctx context.Context, req *models.ListActivitiesRequest) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
