package payments

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда провайдер отклонил платёж
	ErrPaymentDeclined = errors.New("payment declined by provider")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что платёжный провайдер недоступен и операцию нужно
	// оставить в состоянии pending для последующей обработки
	ErrServiceDegraded = errors.New("payment provider unavailable: graceful degradation applied")
)
