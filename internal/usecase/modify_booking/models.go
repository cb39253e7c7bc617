package modify_booking

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

// Request модель запроса на изменение бронирования
// Те же поля используются и для предварительного расчёта (Quote)
type Request struct {
	UserID       int64               // ID пользователя
	BookingID    int64               // ID бронирования
	Date         time.Time           // Новая дата
	StartTime    types.TimeString    // Новое время слота
	Participants domain.Participants // Новое количество участников по типам
}

// QuoteResponse модель ответа с расчётом изменения
// Квота носит рекомендательный характер и не меняет бронирование
type QuoteResponse struct {
	BookingID       int64  // ID бронирования
	Reference       string // Номер бронирования
	OriginalPrice   string // Текущая стоимость, "358.00"
	NewPrice        string // Стоимость с новыми параметрами
	PriceDifference string // Разница со знаком
	ModificationFee string // Сбор за изменение
	AmountDue       string // Итог со знаком: положительный - доплата
	HasChanges      bool   // Отличаются ли запрошенные параметры от текущих
}

// Response модель ответа с изменённым бронированием
type Response struct {
	BookingID       int64  // ID бронирования
	Reference       string // Номер бронирования
	BookingDate     string // Новая дата, "2025-07-15"
	StartTime       string // Новое время слота
	Adults          int    // Количество взрослых
	Children        int    // Количество детей
	Seniors         int    // Количество пенсионеров
	TotalAmount     string // Новая стоимость бронирования
	PriceDifference string // Разница со старой стоимостью, со знаком
	ModificationFee string // Удержанный сбор
	AmountDue       string // Итог со знаком: положительный - доплата
	PaymentStatus   string // Статус доплаты/возврата (succeeded/pending/failed)
}
