package create_booking

import (
	"time"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64               // ID пользователя
	ActivityID   int64               // ID активности
	Date         time.Time           // Дата бронирования (без времени)
	StartTime    types.TimeString    // Время слота (например, "09:00")
	Participants domain.Participants // Количество участников по типам
	Notes        *string             // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	Reference   string           // Пользовательский номер бронирования
	UserID      int64            // ID пользователя
	ActivityID  int64            // ID активности
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время слота
	Adults      int              // Количество взрослых
	Children    int              // Количество детей
	Seniors     int              // Количество пенсионеров
	TotalAmount string           // Итоговая стоимость, "497.00"
	Status      string           // Статус бронирования

	// Денормализованные данные
	ActivityTitle string  // Название активности
	Notes         *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
