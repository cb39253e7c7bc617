package get_availability

import "time"

// Request модель запроса на получение доступности активности на дату
type Request struct {
	ActivityID int64     // ID активности
	Date       time.Time // Дата (без времени)
}

// Slot доступность одного временного слота
type Slot struct {
	StartTime      string // Время слота, "09:00"
	BookedCount    int    // Занято мест
	RemainingSpots int    // Осталось мест
	Available      bool   // Есть ли хоть одно место
}

// Response модель ответа с доступностью на дату
type Response struct {
	ActivityID int64     // ID активности
	Date       time.Time // Запрошенная дата
	Slots      []Slot    // Слоты в порядке расписания
	FromCache  bool      // Снимок взят из кэша
}
