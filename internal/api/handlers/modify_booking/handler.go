package modify_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/soltours/booking-service/internal/api/handlers"
	"github.com/soltours/booking-service/internal/api/middleware"
	modifyBooking "github.com/soltours/booking-service/internal/usecase/modify_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotModify       = "бронирование не может быть изменено"
	msgTooLateToModify    = "слишком поздно для изменения бронирования"
	msgNoChanges          = "запрошенные параметры совпадают с текущими"
	msgInvalidTimeSlot    = "активность не отправляется в указанное время"
	msgNotEnoughSpots     = "недостаточно мест в выбранном слоте"
	msgPriceUnavailable   = "активность не продаётся для указанного типа участников"
)

type Handler struct {
	useCase ModifyBookingUseCase
	logger  Logger
}

func NewHandler(useCase ModifyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/modify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/modify - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/modify - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ModifyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/modify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/modify - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, modifyBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/modify - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, modifyBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/modify - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, modifyBooking.ErrCannotModify):
			h.logger.Warn("POST /bookings/{id}/modify - Cannot modify: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotModify)

		case errors.Is(err, modifyBooking.ErrTooLateToModify):
			h.logger.Warn("POST /bookings/{id}/modify - Too late to modify: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgTooLateToModify)

		case errors.Is(err, modifyBooking.ErrNoChanges):
			h.logger.Warn("POST /bookings/{id}/modify - No changes: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNoChanges)

		case errors.Is(err, modifyBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings/{id}/modify - Invalid time slot: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, modifyBooking.ErrNotEnoughSpots):
			h.logger.Warn("POST /bookings/{id}/modify - Not enough spots: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEnoughSpots)

		case errors.Is(err, modifyBooking.ErrPriceUnavailable):
			h.logger.Warn("POST /bookings/{id}/modify - Price unavailable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgPriceUnavailable)

		case errors.Is(err, modifyBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/modify - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/modify - Failed to modify booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/modify - Booking modified: booking_id=%d, amount_due=%s",
		bookingID, result.AmountDue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
