package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/soltours/booking-service/internal/domain"
	policyRepo "github.com/soltours/booking-service/internal/infra/storage/policy"
	"github.com/soltours/booking-service/internal/pricing"
	"github.com/soltours/booking-service/internal/service/policy/models"
)

// Service сервис политик отмены
// Отдаёт сконфигурированную политику активности с фолбэком на
// референсную: отсутствие строк в базе не ломает расчёты
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// GetForActivity получает политику отмены для активности
// Приоритет: политика активности -> глобальная политика -> референсная
func (s *Service) GetForActivity(ctx context.Context, activityID *int64) (*domain.CancellationPolicy, error) {
	p, err := s.policyRepo.GetWithHierarchy(ctx, activityID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("GetForActivity: no configured policy for activity=%v, using default", activityID)
			return domain.DefaultCancellationPolicy(), nil
		}
		s.logger.Error("GetForActivity: repository error for activity=%v: %v", activityID, err)
		return nil, fmt.Errorf("%w: GetForActivity - repository error: %v", ErrInternal, err)
	}

	// Сконфигурированная политика может быть испорчена руками,
	// испорченную подменяем референсной
	if err := pricing.PolicyFromDomain(p).Validate(); err != nil {
		s.logger.Error("GetForActivity: configured policy id=%d is invalid, using default: %v", p.ID, err)
		return domain.DefaultCancellationPolicy(), nil
	}

	return p, nil
}

// GetForActivityResponse получает политику отмены активности в виде DTO
func (s *Service) GetForActivityResponse(ctx context.Context, activityID *int64) (*models.PolicyResponse, error) {
	p, err := s.GetForActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPolicy(p), nil
}
