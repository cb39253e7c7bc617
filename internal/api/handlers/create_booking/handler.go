package create_booking

import (
	"errors"
	"net/http"

	"github.com/soltours/booking-service/internal/api/handlers"
	"github.com/soltours/booking-service/internal/api/middleware"
	createBooking "github.com/soltours/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgActivityNotFound    = "активность не найдена"
	msgActivityNotBookable = "активность недоступна для бронирования"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgInvalidTimeSlot     = "активность не отправляется в указанное время"
	msgNotEnoughSpots      = "недостаточно мест в выбранном слоте"
	msgPriceUnavailable    = "активность не продаётся для указанного типа участников"
	msgPaymentDeclined     = "платёж отклонён"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrNotEnoughSpots):
			h.logger.Warn("POST /bookings - Not enough spots: user_id=%d, activity_id=%d", userID, req.ActivityID)
			handlers.RespondConflict(w, msgNotEnoughSpots)

		case errors.Is(err, createBooking.ErrActivityNotFound):
			h.logger.Warn("POST /bookings - Activity not found: activity_id=%d", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, createBooking.ErrActivityNotBookable):
			h.logger.Warn("POST /bookings - Activity not bookable: activity_id=%d", req.ActivityID)
			handlers.RespondBadRequest(w, msgActivityNotBookable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, activity_id=%d", userID, req.ActivityID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, activity_id=%d", userID, req.ActivityID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPriceUnavailable):
			h.logger.Warn("POST /bookings - Price unavailable: user_id=%d, activity_id=%d", userID, req.ActivityID)
			handlers.RespondBadRequest(w, msgPriceUnavailable)

		case errors.Is(err, createBooking.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings - Payment declined: user_id=%d, activity_id=%d", userID, req.ActivityID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, activity_id=%d, error=%v",
				userID, req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, user_id=%d",
		result.ID, result.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
