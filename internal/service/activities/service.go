package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/soltours/booking-service/internal/domain"
	activityRepo "github.com/soltours/booking-service/internal/infra/storage/activity"
	"github.com/soltours/booking-service/internal/service/activities/models"
)

// Service сервис каталога активностей
type Service struct {
	activityRepo ActivityRepository
	reviewRepo   ReviewRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	activityRepo ActivityRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

// List получает список активностей каталога
// Опционально фильтрует по категории, неактивные активности скрыты
func (s *Service) List(ctx context.Context, req *models.ListActivitiesRequest) (*models.ActivityListResponse, error) {
	s.logger.Info("List: fetching activities, category=%v", req.Category)

	filter := domain.ActivitiesFilter{
		Category: req.Category,
	}

	activities, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d activities", len(activities))
	return models.FromDomainActivityList(activities), nil
}

// GetBySlug получает активность каталога по slug вместе с агрегатом отзывов
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ActivityResponse, error) {
	s.logger.Info("GetBySlug: fetching activity slug=%s", slug)

	activity, err := s.activityRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("GetBySlug: activity slug=%s not found", slug)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainActivity(activity)

	// Агрегат отзывов best-effort: его отсутствие не ломает ответ
	reviews, err := s.reviewRepo.GetByActivityID(ctx, activity.ID)
	if err != nil {
		s.logger.Warn("GetBySlug: failed to fetch reviews for activity id=%d: %v", activity.ID, err)
	} else {
		resp.WithRatingSummary(domain.SummarizeRatings(reviews))
	}

	s.logger.Info("GetBySlug: successfully fetched activity slug=%s", slug)
	return resp, nil
}
