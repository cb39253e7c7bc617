package modify_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("modify_booking: booking not found")

	// ErrActivityNotFound возвращается, когда активность бронирования не найдена
	ErrActivityNotFound = errors.New("modify_booking: activity not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("modify_booking: access denied")

	// ErrCannotModify возвращается, когда бронирование нельзя изменить
	ErrCannotModify = errors.New("modify_booking: booking cannot be modified")

	// ErrTooLateToModify возвращается, когда до начала активности осталось
	// меньше минимального срока изменения
	ErrTooLateToModify = errors.New("modify_booking: too late to modify this booking")

	// ErrNoChanges возвращается, когда запрошенные параметры совпадают с текущими
	ErrNoChanges = errors.New("modify_booking: no changes requested")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("modify_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда активность не отправляется в указанное время
	ErrInvalidTimeSlot = errors.New("modify_booking: invalid time slot")

	// ErrNotEnoughSpots возвращается, когда в новом слоте не хватает мест
	ErrNotEnoughSpots = errors.New("modify_booking: not enough spots in this slot")

	// ErrPriceUnavailable возвращается, когда активность не продаётся
	// для одного из запрошенных типов участников
	ErrPriceUnavailable = errors.New("modify_booking: no price for requested participant type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modify_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("modify_booking: internal error")
)
