package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrNotReviewable возвращается, когда бронирование нельзя оценить
	// Отзыв доступен только по завершённому бронированию
	ErrNotReviewable = errors.New("booking is not eligible for review")

	// ErrAlreadyReviewed возвращается, когда отзыв уже оставлен
	ErrAlreadyReviewed = errors.New("booking already reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
