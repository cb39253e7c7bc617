package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отрицательные суммы, нулевые timestamp'ы, отрицательные количества участников)
	ErrInvalidInput = errors.New("pricing: invalid input")

	// ErrMissingPriceTier возвращается, когда для типа участника с ненулевым
	// количеством нет цены в прайс-таблице
	ErrMissingPriceTier = errors.New("pricing: missing price tier")

	// ErrInvalidPolicy возвращается при некорректной конфигурации политики отмены
	ErrInvalidPolicy = errors.New("pricing: invalid cancellation policy")
)
