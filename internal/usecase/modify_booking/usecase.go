package modify_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soltours/booking-service/internal/domain"
	activityRepo "github.com/soltours/booking-service/internal/infra/storage/activity"
	bookingRepo "github.com/soltours/booking-service/internal/infra/storage/booking"
	"github.com/soltours/booking-service/internal/integrations/notify"
	paymentsClient "github.com/soltours/booking-service/internal/integrations/payments"
	"github.com/soltours/booking-service/internal/pricing"
)

// Валюта всех расчётов сервиса
const currency = "EUR"

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	activityRepo   ActivityRepository
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
	activityRepo ActivityRepository,
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
		activityRepo:   activityRepo,
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

// Quote считает предварительную квоту изменения, не меняя бронирование
func (uc *UseCase) Quote(ctx context.Context, req *Request) (*QuoteResponse, error) {
	uc.logger.Info("ModifyBookingQuote: booking=%d, user=%d", req.BookingID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ModifyBookingQuote: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.loadOwnedModifiable(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	activity, err := uc.loadActivity(ctx, booking.ActivityID)
	if err != nil {
		return nil, err
	}

	quote, err := uc.quoteFor(ctx, booking, activity, req)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		OriginalPrice:   quote.OriginalPrice.StringFixed(2),
		NewPrice:        quote.NewPrice.StringFixed(2),
		PriceDifference: quote.PriceDifference.StringFixed(2),
		ModificationFee: quote.ModificationFee.StringFixed(2),
		AmountDue:       quote.AmountDue.StringFixed(2),
		HasChanges:      quote.HasChanges,
	}, nil
}

// Execute выполняет use case изменения бронирования
// Проверка вместимости нового слота и обновление выполняются в
// сериализуемой транзакции для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModifyBooking: booking=%d, user=%d, date=%s, time=%s, participants=%d",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.Participants.Total())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ModifyBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var quote *pricing.ModificationQuote
	var previousDate string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.loadOwnedModifiable(txCtx, req.BookingID, req.UserID)
		if err != nil {
			return err
		}

		// 2.2. Получаем активность
		activity, err := uc.loadActivity(txCtx, booking.ActivityID)
		if err != nil {
			return err
		}

		// 2.3. Проверяем новый слот активности
		if !activity.HasTimeSlot(req.StartTime) {
			uc.logger.Warn("ModifyBooking: activity id=%d has no slot at %s", activity.ID, req.StartTime)
			return ErrInvalidTimeSlot
		}

		// 2.4. Считаем квоту изменения
		quote, err = uc.quoteFor(txCtx, booking, activity, req)
		if err != nil {
			return err
		}

		if !quote.HasChanges {
			uc.logger.Warn("ModifyBooking: booking id=%d has no changes requested", booking.ID)
			return ErrNoChanges
		}

		// 2.5. Проверяем вместимость нового слота, не считая само бронирование
		if err := uc.checkCapacity(txCtx, booking, activity, req); err != nil {
			return err
		}

		// 2.6. Обновляем бронирование: новая стоимость - это NewPrice,
		// сбор и разница оформляются отдельной платёжной записью
		if err := uc.bookingRepo.UpdateDetails(
			txCtx, booking.ID, req.Date, req.StartTime.String(), req.Participants, quote.NewPrice,
		); err != nil {
			uc.logger.Error("ModifyBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		previousDate = booking.BookingDate.Format(domain.DateFormat)
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Проводим доплату или возврат разницы
	paymentStatus := uc.settleAdjustment(ctx, result, quote)

	// 4. Инвалидируем снимки доступности старого и нового дня
	newDate := req.Date.Format(domain.DateFormat)
	for _, date := range []string{previousDate, newDate} {
		if err := uc.cache.Invalidate(ctx, result.ActivityID, date); err != nil {
			uc.logger.Warn("ModifyBooking: failed to invalidate availability cache for activity=%d date=%s: %v",
				result.ActivityID, date, err)
		}
	}

	// 5. Уведомляем пользователя best-effort
	uc.notifyClient.SendBestEffort(ctx, &notify.Notification{
		UserID:           result.UserID,
		Event:            notify.EventBookingModified,
		BookingReference: result.Reference,
		Payload: map[string]string{
			"date":       newDate,
			"time":       req.StartTime.String(),
			"amount_due": quote.AmountDue.StringFixed(2),
		},
	})

	uc.logger.Info("ModifyBooking: successfully modified booking id=%d, amount due %s (diff %s, fee %s)",
		result.ID, quote.AmountDue.StringFixed(2), quote.PriceDifference.StringFixed(2), quote.ModificationFee.StringFixed(2))

	return &Response{
		BookingID:       result.ID,
		Reference:       result.Reference,
		BookingDate:     newDate,
		StartTime:       req.StartTime.String(),
		Adults:          req.Participants.Adults,
		Children:        req.Participants.Children,
		Seniors:         req.Participants.Seniors,
		TotalAmount:     quote.NewPrice.StringFixed(2),
		PriceDifference: quote.PriceDifference.StringFixed(2),
		ModificationFee: quote.ModificationFee.StringFixed(2),
		AmountDue:       quote.AmountDue.StringFixed(2),
		PaymentStatus:   paymentStatus,
	}, nil
}

// loadOwnedModifiable получает бронирование и проверяет владельца,
// статус и срок изменения
func (uc *UseCase) loadOwnedModifiable(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ModifyBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ModifyBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		uc.logger.Warn("ModifyBooking: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeModified() {
		uc.logger.Warn("ModifyBooking: booking id=%d cannot be modified, status=%s", bookingID, booking.Status)
		return nil, ErrCannotModify
	}

	// Изменение доступно не позже чем за DefaultModificationNoticeHrs
	// часов до начала активности
	scheduledStartAt, err := booking.ScheduledStartAt()
	if err != nil {
		uc.logger.Error("ModifyBooking: failed to compute start time for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to compute start time: %v", ErrInternal, err)
	}

	hoursUntilStart := scheduledStartAt.Sub(uc.timeProvider.Now()).Hours()
	if hoursUntilStart < domain.DefaultModificationNoticeHrs {
		uc.logger.Warn("ModifyBooking: booking id=%d starts in %.1fh, modification window closed", bookingID, hoursUntilStart)
		return nil, ErrTooLateToModify
	}

	return booking, nil
}

// loadActivity получает активность бронирования
func (uc *UseCase) loadActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	activity, err := uc.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("ModifyBooking: activity id=%d not found", activityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("ModifyBooking: failed to get activity id=%d: %v", activityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}
	return activity, nil
}

// quoteFor считает квоту изменения по политике активности бронирования
func (uc *UseCase) quoteFor(ctx context.Context, booking *domain.Booking, activity *domain.Activity, req *Request) (*pricing.ModificationQuote, error) {
	policy, err := uc.policyService.GetForActivity(ctx, &booking.ActivityID)
	if err != nil {
		uc.logger.Error("ModifyBooking: failed to get policy for activity=%d: %v", booking.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	original := pricing.Snapshot{
		Date:         booking.BookingDate,
		StartTime:    booking.StartTime,
		Participants: booking.Participants,
	}
	proposed := pricing.Snapshot{
		Date:         req.Date,
		StartTime:    req.StartTime,
		Participants: req.Participants,
	}

	quote, err := pricing.PolicyFromDomain(policy).QuoteModification(original, proposed, activity.PriceTable())
	if err != nil {
		if errors.Is(err, pricing.ErrMissingPriceTier) {
			uc.logger.Warn("ModifyBooking: activity id=%d has no price for requested participants", activity.ID)
			return nil, ErrPriceUnavailable
		}
		uc.logger.Warn("ModifyBooking: failed to quote modification for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return quote, nil
}

// checkCapacity проверяет вместимость нового слота, исключая само бронирование
func (uc *UseCase) checkCapacity(ctx context.Context, booking *domain.Booking, activity *domain.Activity, req *Request) error {
	filter := domain.ActivityBookingsFilter{
		ActivityID: booking.ActivityID,
		Date:       &req.Date,
		StartTime:  &req.StartTime,
	}

	bookings, err := uc.bookingRepo.GetByActivityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ModifyBooking: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	bookedSpots := 0
	for _, b := range bookings {
		if b.ID == booking.ID || !b.OccupiesCapacity() {
			continue
		}
		bookedSpots += b.Participants.Total()
	}

	if bookedSpots+req.Participants.Total() > activity.MaxParticipants {
		uc.logger.Warn("ModifyBooking: not enough spots, %d/%d taken, requested %d",
			bookedSpots, activity.MaxParticipants, req.Participants.Total())
		return ErrNotEnoughSpots
	}

	return nil
}

// settleAdjustment проводит доплату или возврат разницы и фиксирует
// платёжную запись со знаком: положительная сумма - списание
func (uc *UseCase) settleAdjustment(ctx context.Context, booking *domain.Booking, quote *pricing.ModificationQuote) string {
	if quote.AmountDue.IsZero() {
		return string(domain.PaymentSucceeded)
	}

	idempotencyKey := uuid.New().String()

	payment := &domain.Payment{
		BookingID:      booking.ID,
		Kind:           domain.PaymentAdjustment,
		Amount:         quote.AmountDue,
		Currency:       currency,
		IdempotencyKey: idempotencyKey,
		Status:         domain.PaymentPending,
	}

	var tx *paymentsClient.TransactionResponse
	var err error

	if quote.AmountDue.IsPositive() {
		tx, err = uc.paymentsClient.CaptureWithGracefulDegradation(
			ctx, booking.Reference, quote.AmountDue, currency, idempotencyKey)
	} else {
		tx, err = uc.paymentsClient.RefundWithGracefulDegradation(
			ctx, booking.Reference, quote.RefundDue(), currency, idempotencyKey)
	}

	switch {
	case err == nil:
		payment.Status = domain.PaymentSucceeded
		payment.ProviderRef = &tx.TransactionID
	case errors.Is(err, paymentsClient.ErrServiceDegraded):
		// Оставляем pending, расчёт завершится при повторной попытке
	default:
		uc.logger.Error("ModifyBooking: adjustment payment failed for booking id=%d: %v", booking.ID, err)
		payment.Status = domain.PaymentFailed
	}

	if _, repoErr := uc.paymentRepo.Create(ctx, payment); repoErr != nil {
		uc.logger.Error("ModifyBooking: failed to record adjustment for booking id=%d: %v", booking.ID, repoErr)
	}

	return string(payment.Status)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Participants.HasNegativeCount() {
		return fmt.Errorf("%w: participant counts must not be negative", ErrInvalidInput)
	}

	if req.Participants.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	if req.Participants.Total() > domain.MaxBookingParticipants {
		return fmt.Errorf("%w: at most %d participants per booking", ErrInvalidInput, domain.MaxBookingParticipants)
	}

	return nil
}
