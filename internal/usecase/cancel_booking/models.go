package cancel_booking

// QuoteRequest модель запроса на предварительный расчёт отмены
type QuoteRequest struct {
	UserID    int64 // ID пользователя
	BookingID int64 // ID бронирования
}

// QuoteResponse модель ответа с расчётом отмены
// Квота носит рекомендательный характер и не меняет бронирование
type QuoteResponse struct {
	BookingID       int64  // ID бронирования
	Reference       string // Номер бронирования
	TotalAmount     string // Стоимость бронирования, "358.00"
	HoursUntilStart string // Часов до начала активности, может быть отрицательным
	RefundPercent   int    // Процент возврата выбранного tier'а
	CancellationFee string // Сбор за отмену
	RefundAmount    string // Итоговая сумма возврата
}

// Request модель запроса на отмену бронирования
type Request struct {
	UserID    int64  // ID пользователя
	BookingID int64  // ID бронирования
	Reason    string // Причина отмены
}

// Response модель ответа с отменённым бронированием
type Response struct {
	BookingID       int64  // ID бронирования
	Reference       string // Номер бронирования
	Status          string // Статус после отмены
	RefundPercent   int    // Применённый процент возврата
	CancellationFee string // Удержанный сбор
	RefundAmount    string // Сумма возврата
	RefundStatus    string // Статус возврата денег (succeeded/pending)
}
