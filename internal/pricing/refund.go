package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CancellationQuote результат расчёта возврата при отмене бронирования
// Квота носит рекомендательный характер: само списание/возврат денег
// выполняется платёжным слоем отдельно
type CancellationQuote struct {
	HoursUntilStart decimal.Decimal // может быть отрицательным, если активность уже началась
	RefundPercent   int
	CancellationFee decimal.Decimal
	RefundAmount    decimal.Decimal // max(0, total * percent/100 - fee), округлено до 2 знаков
}

// QuoteCancellation считает квоту возврата по референсной политике
// now передаётся вызывающей стороной - функция чистая и идемпотентная
func QuoteCancellation(scheduledStartAt time.Time, totalAmount decimal.Decimal, now time.Time) (*CancellationQuote, error) {
	return DefaultPolicy().QuoteCancellation(scheduledStartAt, totalAmount, now)
}

// QuoteCancellation считает квоту возврата по политике p
//
// Алгоритм:
//  1. hoursUntilStart = (scheduledStartAt - now) в часах (дробное, может быть < 0)
//  2. выбор tier'а: первый tier с hoursUntilStart >= MinHoursBefore,
//     иначе последний (catch-all). Активность, которая уже началась,
//     попадает в catch-all так же, как "меньше минимального порога"
//  3. RefundAmount = max(0, totalAmount * percent / 100 - fee)
//
// Функция тотальна: для любых валидных числовых входов возвращает квоту.
// Fee может превышать причитающийся возврат - тогда возврат обрезается
// до нуля, отрицательным он не бывает
func (p Policy) QuoteCancellation(scheduledStartAt time.Time, totalAmount decimal.Decimal, now time.Time) (*CancellationQuote, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if scheduledStartAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduledStartAt is required", ErrInvalidInput)
	}
	if now.IsZero() {
		return nil, fmt.Errorf("%w: now is required", ErrInvalidInput)
	}
	if totalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	hoursUntilStart := decimal.NewFromFloat(scheduledStartAt.Sub(now).Hours())

	tier := p.selectTier(hoursUntilStart)

	refund := totalAmount.
		Mul(decimal.NewFromInt(int64(tier.RefundPercent))).
		Div(oneHundred).
		Sub(tier.CancellationFee).
		Round(2)

	if refund.IsNegative() {
		refund = decimal.Zero
	}

	return &CancellationQuote{
		HoursUntilStart: hoursUntilStart,
		RefundPercent:   tier.RefundPercent,
		CancellationFee: tier.CancellationFee,
		RefundAmount:    refund,
	}, nil
}
