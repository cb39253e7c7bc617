package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soltours/booking-service/internal/domain"
	activityRepo "github.com/soltours/booking-service/internal/infra/storage/activity"
	"github.com/soltours/booking-service/internal/integrations/notify"
	paymentsClient "github.com/soltours/booking-service/internal/integrations/payments"
	"github.com/soltours/booking-service/internal/pricing"
)

// Валюта всех расчётов сервиса
const currency = "EUR"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	activityRepo   ActivityRepository
	paymentRepo    PaymentRepository
	paymentsClient PaymentsClient
	notifyClient   NotifyClient
	cache          AvailabilityCache
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	paymentRepo PaymentRepository,
	paymentsClient PaymentsClient,
	notifyClient NotifyClient,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		activityRepo:   activityRepo,
		paymentRepo:    paymentRepo,
		paymentsClient: paymentsClient,
		notifyClient:   notifyClient,
		cache:          cache,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в сериализуемой транзакции
// для предотвращения гонки данных при параллельных бронированиях
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, activity=%d, date=%s, time=%s, participants=%d",
		req.UserID, req.ActivityID, req.Date.Format(domain.DateFormat), req.StartTime, req.Participants.Total())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем активность
	activity, err := uc.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("CreateBooking: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	if !activity.IsBookable() {
		uc.logger.Warn("CreateBooking: activity id=%d is not bookable, status=%s", req.ActivityID, activity.Status)
		return nil, ErrActivityNotBookable
	}

	// 5. Проверяем, что активность отправляется в указанное время
	if !activity.HasTimeSlot(req.StartTime) {
		uc.logger.Warn("CreateBooking: activity id=%d has no slot at %s", req.ActivityID, req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 6. Считаем итоговую стоимость по прайс-таблице активности
	totalAmount, err := pricing.Price(req.Participants, activity.PriceTable())
	if err != nil {
		if errors.Is(err, pricing.ErrMissingPriceTier) {
			uc.logger.Warn("CreateBooking: activity id=%d has no price for requested participants", req.ActivityID)
			return nil, ErrPriceUnavailable
		}
		uc.logger.Warn("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования слота с блокировкой (FOR UPDATE)
		filter := domain.ActivityBookingsFilter{
			ActivityID: req.ActivityID,
			Date:       &req.Date,
			StartTime:  &req.StartTime,
		}

		bookings, err := uc.bookingRepo.GetByActivityWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем вместимость слота
		bookedSpots := countBookedSpots(bookings)
		if bookedSpots+req.Participants.Total() > activity.MaxParticipants {
			uc.logger.Warn("CreateBooking: not enough spots, %d/%d taken, requested %d",
				bookedSpots, activity.MaxParticipants, req.Participants.Total())
			return ErrNotEnoughSpots
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken", bookedSpots, activity.MaxParticipants)

		// 7.3. Создаем бронирование с денормализацией данных активности
		booking := &domain.Booking{
			Reference:    newBookingReference(),
			UserID:       req.UserID,
			ActivityID:   req.ActivityID,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			Participants: req.Participants,
			TotalAmount:  totalAmount,
			Status:       domain.StatusPending,
			// Денормализация данных активности
			ActivityTitle: activity.Title,
			// Заметки
			Notes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Списываем средства; при недоступности провайдера бронирование
	// остаётся в pending и будет подтверждено позднее
	status, err := uc.capturePayment(ctx, result)
	if err != nil {
		return nil, err
	}
	result.Status = status

	// 9. Инвалидируем снимок доступности слота
	dateStr := req.Date.Format(domain.DateFormat)
	if err := uc.cache.Invalidate(ctx, req.ActivityID, dateStr); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate availability cache for activity=%d date=%s: %v",
			req.ActivityID, dateStr, err)
	}

	// 10. Уведомляем пользователя best-effort
	if result.Status == domain.StatusConfirmed {
		uc.notifyClient.SendBestEffort(ctx, &notify.Notification{
			UserID:           result.UserID,
			Event:            notify.EventBookingConfirmed,
			BookingReference: result.Reference,
			Payload: map[string]string{
				"activity": result.ActivityTitle,
				"date":     dateStr,
				"time":     result.StartTime.String(),
			},
		})
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s status=%s",
		result.ID, result.Reference, result.Status)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		Reference:     result.Reference,
		UserID:        result.UserID,
		ActivityID:    result.ActivityID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Adults:        result.Participants.Adults,
		Children:      result.Participants.Children,
		Seniors:       result.Participants.Seniors,
		TotalAmount:   result.TotalAmount.StringFixed(2),
		Status:        string(result.Status),
		ActivityTitle: result.ActivityTitle,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// capturePayment списывает средства и фиксирует платёжную запись
// Возвращает итоговый статус бронирования
func (uc *UseCase) capturePayment(ctx context.Context, booking *domain.Booking) (domain.BookingStatus, error) {
	idempotencyKey := uuid.New().String()

	tx, err := uc.paymentsClient.CaptureWithGracefulDegradation(
		ctx, booking.Reference, booking.TotalAmount, currency, idempotencyKey)

	payment := &domain.Payment{
		BookingID:      booking.ID,
		Kind:           domain.PaymentCapture,
		Amount:         booking.TotalAmount,
		Currency:       currency,
		IdempotencyKey: idempotencyKey,
		Status:         domain.PaymentPending,
	}

	switch {
	case err == nil:
		payment.Status = domain.PaymentSucceeded
		payment.ProviderRef = &tx.TransactionID
	case errors.Is(err, paymentsClient.ErrPaymentDeclined):
		payment.Status = domain.PaymentFailed
	case errors.Is(err, paymentsClient.ErrServiceDegraded):
		// Оставляем pending, деньги спишутся при повторной попытке
	default:
		uc.logger.Error("CreateBooking: unexpected payment error for booking id=%d: %v", booking.ID, err)
		return "", fmt.Errorf("%w: payment failed: %v", ErrInternal, err)
	}

	if _, repoErr := uc.paymentRepo.Create(ctx, payment); repoErr != nil {
		uc.logger.Error("CreateBooking: failed to record payment for booking id=%d: %v", booking.ID, repoErr)
	}

	switch payment.Status {
	case domain.PaymentSucceeded:
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
			uc.logger.Error("CreateBooking: failed to confirm booking id=%d: %v", booking.ID, err)
			return domain.StatusPending, nil
		}
		return domain.StatusConfirmed, nil
	case domain.PaymentFailed:
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CreateBooking: failed to cancel declined booking id=%d: %v", booking.ID, err)
		}
		return "", ErrPaymentDeclined
	default:
		uc.logger.Warn("CreateBooking: booking id=%d left pending, payment provider degraded", booking.ID)
		return domain.StatusPending, nil
	}
}

// newBookingReference генерирует пользовательский номер бронирования,
// например "BK-6f3a9c2e"
func newBookingReference() string {
	return "BK-" + uuid.New().String()[:8]
}
