package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

// Snapshot неизменяемый слепок параметров бронирования,
// участвующих в расчёте изменения
type Snapshot struct {
	Date         time.Time
	StartTime    types.TimeString
	Participants domain.Participants
}

// ModificationQuote результат расчёта стоимости изменения бронирования
type ModificationQuote struct {
	OriginalPrice   decimal.Decimal
	NewPrice        decimal.Decimal
	PriceDifference decimal.Decimal // NewPrice - OriginalPrice, со знаком
	ModificationFee decimal.Decimal

	// AmountDue = PriceDifference + ModificationFee, безусловно.
	// Положительное значение - доплата, отрицательное - возврат.
	// При удешевлении меньше размера fee итог остаётся доплатой -
	// это сохранённое поведение референсной политики
	AmountDue decimal.Decimal

	// HasChanges true, если изменились дата, время или количество
	// участников любого типа. Остальные поля не отслеживаются
	HasChanges bool
}

// RefundDue возвращает сумму к возврату клиенту (абсолютное значение
// AmountDue, когда он отрицательный). Выбор формулировки "доплата" или
// "возврат" остаётся за вызывающей стороной
func (q *ModificationQuote) RefundDue() decimal.Decimal {
	if q.AmountDue.IsNegative() {
		return q.AmountDue.Neg()
	}
	return decimal.Zero
}

// QuoteModification считает квоту изменения по референсной политике
func QuoteModification(original, proposed Snapshot, table domain.PriceTable) (*ModificationQuote, error) {
	return DefaultPolicy().QuoteModification(original, proposed, table)
}

// QuoteModification считает квоту изменения бронирования по политике p
// Функция чистая: не мутирует снапшоты и таблицу цен
func (p Policy) QuoteModification(original, proposed Snapshot, table domain.PriceTable) (*ModificationQuote, error) {
	if original.Date.IsZero() || proposed.Date.IsZero() {
		return nil, fmt.Errorf("%w: snapshot date is required", ErrInvalidInput)
	}
	if original.StartTime.IsZero() || proposed.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: snapshot start time is required", ErrInvalidInput)
	}

	originalPrice, err := Price(original.Participants, table)
	if err != nil {
		return nil, err
	}

	newPrice, err := Price(proposed.Participants, table)
	if err != nil {
		return nil, err
	}

	priceDifference := newPrice.Sub(originalPrice)

	return &ModificationQuote{
		OriginalPrice:   originalPrice,
		NewPrice:        newPrice,
		PriceDifference: priceDifference,
		ModificationFee: p.ModificationFee,
		AmountDue:       priceDifference.Add(p.ModificationFee),
		HasChanges:      hasChanges(original, proposed),
	}, nil
}

// Price считает стоимость набора участников по прайс-таблице:
// сумма count_t * table[t] по всем типам участников.
// Тип с ненулевым количеством без цены в таблице - ошибка
// ErrMissingPriceTier, а не нулевая цена
func Price(participants domain.Participants, table domain.PriceTable) (decimal.Decimal, error) {
	if participants.HasNegativeCount() {
		return decimal.Zero, fmt.Errorf("%w: negative participant count", ErrInvalidInput)
	}

	total := decimal.Zero

	for _, participantType := range domain.ParticipantTypes {
		count := participants.CountFor(participantType)
		if count == 0 {
			continue
		}

		unitPrice, ok := table[participantType]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no price for participant type %q", ErrMissingPriceTier, participantType)
		}
		if unitPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: negative price for participant type %q", ErrInvalidInput, participantType)
		}

		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(count))))
	}

	return total, nil
}

// hasChanges сравнивает только дату, время начала и количества участников
func hasChanges(original, proposed Snapshot) bool {
	if !sameDay(original.Date, proposed.Date) {
		return true
	}
	if original.StartTime != proposed.StartTime {
		return true
	}
	return !original.Participants.Equal(proposed.Participants)
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
