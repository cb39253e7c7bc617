package create_booking

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("create_booking: activity not found")

	// ErrActivityNotBookable возвращается, когда активность снята с продажи
	ErrActivityNotBookable = errors.New("create_booking: activity is not bookable")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда активность не отправляется в указанное время
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrNotEnoughSpots возвращается, когда в слоте не хватает мест
	ErrNotEnoughSpots = errors.New("create_booking: not enough spots in this slot")

	// ErrPriceUnavailable возвращается, когда активность не продаётся
	// для одного из запрошенных типов участников
	ErrPriceUnavailable = errors.New("create_booking: no price for requested participant type")

	// ErrPaymentDeclined возвращается, когда провайдер отклонил платёж
	ErrPaymentDeclined = errors.New("create_booking: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
