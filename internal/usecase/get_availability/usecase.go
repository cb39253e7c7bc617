package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/internal/infra/cache/availability"
	activityRepo "github.com/soltours/booking-service/internal/infra/storage/activity"
)

// UseCase use case для получения доступности активности на дату
type UseCase struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
// Снимок читается из кэша; промах пересчитывает доступность из базы
// и прогревает кэш
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: activity=%d, date=%s", req.ActivityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Прошедшая дата - пустая доступность, без обращения к базе
	if isDateInPast(req.Date, now) {
		return &Response{
			ActivityID: req.ActivityID,
			Date:       req.Date,
			Slots:      []Slot{},
		}, nil
	}

	dateStr := req.Date.Format(domain.DateFormat)

	// 3. Пробуем взять снимок из кэша
	if snapshot, err := uc.cache.Get(ctx, req.ActivityID, dateStr); err == nil {
		uc.logger.Info("GetAvailability: cache hit for activity=%d date=%s", req.ActivityID, dateStr)
		return &Response{
			ActivityID: req.ActivityID,
			Date:       req.Date,
			Slots:      filterPastSlots(fromSnapshot(snapshot), req.Date, now),
			FromCache:  true,
		}, nil
	} else if !errors.Is(err, availability.ErrCacheMiss) {
		// Недоступный кэш не блокирует ответ, пересчитываем из базы
		uc.logger.Warn("GetAvailability: cache error for activity=%d date=%s: %v", req.ActivityID, dateStr, err)
	}

	// 4. Получаем активность
	activity, err := uc.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailability: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на эту дату
	filter := domain.ActivityBookingsFilter{
		ActivityID: req.ActivityID,
		Date:       &req.Date,
	}

	bookings, err := uc.bookingRepo.GetByActivityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем занятость слотов
	slots := calculateSlots(activity, bookings)

	// 7. Прогреваем кэш полным снимком (до фильтрации прошедших слотов)
	if err := uc.cache.Set(ctx, toSnapshot(req.ActivityID, dateStr, slots, now)); err != nil {
		uc.logger.Warn("GetAvailability: failed to cache snapshot for activity=%d date=%s: %v",
			req.ActivityID, dateStr, err)
	}

	uc.logger.Info("GetAvailability: computed %d slots for activity=%d date=%s", len(slots), req.ActivityID, dateStr)

	return &Response{
		ActivityID: req.ActivityID,
		Date:       req.Date,
		Slots:      filterPastSlots(slots, req.Date, now),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
