package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soltours/booking-service/internal/domain"
	bookingRepo "github.com/soltours/booking-service/internal/infra/storage/booking"
	"github.com/soltours/booking-service/internal/integrations/notify"
	paymentsClient "github.com/soltours/booking-service/internal/integrations/payments"
	"github.com/soltours/booking-service/internal/pricing"
)

// Валюта всех расчётов сервиса
const currency = "EUR"

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	paymentRepo    PaymentRepository
	policyService  PolicyService
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
	paymentRepo PaymentRepository,
	policyService PolicyService,
	paymentsClient PaymentsClient,
	notifyClient NotifyClient,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
		policyService:  policyService,
		paymentsClient: paymentsClient,
		notifyClient:   notifyClient,
		cache:          cache,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Quote считает предварительную квоту отмены, не меняя бронирование
// Пользователь видит процент возврата, сбор и итоговую сумму до
// подтверждения отмены
func (uc *UseCase) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	uc.logger.Info("CancelBookingQuote: booking=%d, user=%d", req.BookingID, req.UserID)

	if err := validateIDs(req.UserID, req.BookingID); err != nil {
		return nil, err
	}

	booking, err := uc.loadOwnedCancellable(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	quote, err := uc.quoteFor(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		TotalAmount:     booking.TotalAmount.StringFixed(2),
		HoursUntilStart: quote.HoursUntilStart.StringFixed(1),
		RefundPercent:   quote.RefundPercent,
		CancellationFee: quote.CancellationFee.StringFixed(2),
		RefundAmount:    quote.RefundAmount.StringFixed(2),
	}, nil
}

// Execute выполняет use case отмены бронирования
//
// Квота пересчитывается внутри транзакции по времени исполнения:
// между предварительным расчётом и подтверждением мог смениться tier
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateIDs(req.UserID, req.BookingID); err != nil {
		return nil, err
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Booking
	var quote *pricing.CancellationQuote

	// 2. Выполняем операции с БД в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.loadOwnedCancellable(txCtx, req.BookingID, req.UserID)
		if err != nil {
			return err
		}

		// 2.2. Считаем квоту возврата
		quote, err = uc.quoteFor(txCtx, booking)
		if err != nil {
			return err
		}

		// 2.3. Отменяем бронирование, фиксируя расчёт
		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, req.Reason, quote.RefundAmount, quote.CancellationFee); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Возвращаем деньги; при недоступности провайдера возврат
	// остаётся в pending и не блокирует отмену
	refundStatus := uc.issueRefund(ctx, result, quote)

	// 4. Инвалидируем снимок доступности: места вернулись в слот
	dateStr := result.BookingDate.Format(domain.DateFormat)
	if err := uc.cache.Invalidate(ctx, result.ActivityID, dateStr); err != nil {
		uc.logger.Warn("CancelBooking: failed to invalidate availability cache for activity=%d date=%s: %v",
			result.ActivityID, dateStr, err)
	}

	// 5. Уведомляем пользователя best-effort
	uc.notifyClient.SendBestEffort(ctx, &notify.Notification{
		UserID:           result.UserID,
		Event:            notify.EventBookingCancelled,
		BookingReference: result.Reference,
		Payload: map[string]string{
			"refund_amount": quote.RefundAmount.StringFixed(2),
		},
	})

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, refund=%s (%d%%, fee %s)",
		result.ID, quote.RefundAmount.StringFixed(2), quote.RefundPercent, quote.CancellationFee.StringFixed(2))

	return &Response{
		BookingID:       result.ID,
		Reference:       result.Reference,
		Status:          string(domain.StatusCancelled),
		RefundPercent:   quote.RefundPercent,
		CancellationFee: quote.CancellationFee.StringFixed(2),
		RefundAmount:    quote.RefundAmount.StringFixed(2),
		RefundStatus:    refundStatus,
	}, nil
}

// loadOwnedCancellable получает бронирование и проверяет владельца и статус
func (uc *UseCase) loadOwnedCancellable(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		uc.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	return booking, nil
}

// quoteFor считает квоту возврата по политике активности бронирования
func (uc *UseCase) quoteFor(ctx context.Context, booking *domain.Booking) (*pricing.CancellationQuote, error) {
	policy, err := uc.policyService.GetForActivity(ctx, &booking.ActivityID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get policy for activity=%d: %v", booking.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get cancellation policy: %v", ErrInternal, err)
	}

	scheduledStartAt, err := booking.ScheduledStartAt()
	if err != nil {
		uc.logger.Error("CancelBooking: failed to compute start time for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to compute start time: %v", ErrInternal, err)
	}

	quote, err := pricing.PolicyFromDomain(policy).QuoteCancellation(scheduledStartAt, booking.TotalAmount, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("CancelBooking: failed to quote cancellation for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to quote cancellation: %v", ErrInternal, err)
	}

	return quote, nil
}

// issueRefund возвращает деньги и фиксирует платёжную запись
// Нулевой возврат записи не создаёт
func (uc *UseCase) issueRefund(ctx context.Context, booking *domain.Booking, quote *pricing.CancellationQuote) string {
	if quote.RefundAmount.IsZero() {
		return string(domain.PaymentSucceeded)
	}

	idempotencyKey := uuid.New().String()

	payment := &domain.Payment{
		BookingID:      booking.ID,
		Kind:           domain.PaymentRefund,
		Amount:         quote.RefundAmount.Neg(),
		Currency:       currency,
		IdempotencyKey: idempotencyKey,
		Status:         domain.PaymentPending,
	}

	tx, err := uc.paymentsClient.RefundWithGracefulDegradation(
		ctx, booking.Reference, quote.RefundAmount, currency, idempotencyKey)
	if err == nil {
		payment.Status = domain.PaymentSucceeded
		payment.ProviderRef = &tx.TransactionID
	} else if !errors.Is(err, paymentsClient.ErrServiceDegraded) {
		uc.logger.Error("CancelBooking: unexpected refund error for booking id=%d: %v", booking.ID, err)
		payment.Status = domain.PaymentFailed
	}

	if _, repoErr := uc.paymentRepo.Create(ctx, payment); repoErr != nil {
		uc.logger.Error("CancelBooking: failed to record refund for booking id=%d: %v", booking.ID, repoErr)
	}

	return string(payment.Status)
}

// validateIDs проверяет идентификаторы запроса
func validateIDs(userID, bookingID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	return nil
}
