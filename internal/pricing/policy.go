// Package pricing содержит чистые калькуляторы стоимости отмены и изменения
// бронирования. Функции не читают системное время и не делают I/O: текущее
// время всегда передаётся вызывающей стороной, результат полностью
// детерминирован входными данными.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/internal/domain"
)

// Policy политика отмены/изменения, по которой считаются квоты
// Tiers отсортированы от самого щедрого порога вниз; последний tier -
// catch-all для всего, что ниже минимального порога (включая уже
// начавшиеся активности)
type Policy struct {
	Tiers           []domain.RefundTier
	ModificationFee decimal.Decimal
}

// DefaultPolicy возвращает референсную политику (72/24/12 часов, fee 25)
func DefaultPolicy() Policy {
	return PolicyFromDomain(domain.DefaultCancellationPolicy())
}

// PolicyFromDomain конвертирует domain-конфигурацию в расчётную политику
func PolicyFromDomain(p *domain.CancellationPolicy) Policy {
	return Policy{
		Tiers:           p.Tiers,
		ModificationFee: p.ModificationFee,
	}
}

// Validate проверяет, что таблица tier'ов замкнута и упорядочена:
// хотя бы один tier, пороги строго убывают, проценты в [0, 100]
func (p Policy) Validate() error {
	if len(p.Tiers) == 0 {
		return fmt.Errorf("%w: no refund tiers", ErrInvalidPolicy)
	}

	for i, tier := range p.Tiers {
		if tier.RefundPercent < 0 || tier.RefundPercent > 100 {
			return fmt.Errorf("%w: tier %d refund percent %d out of range", ErrInvalidPolicy, i, tier.RefundPercent)
		}
		if tier.CancellationFee.IsNegative() {
			return fmt.Errorf("%w: tier %d has negative fee", ErrInvalidPolicy, i)
		}
		if i > 0 && tier.MinHoursBefore >= p.Tiers[i-1].MinHoursBefore {
			return fmt.Errorf("%w: tier thresholds must strictly decrease", ErrInvalidPolicy)
		}
	}

	return nil
}

// selectTier выбирает tier по количеству часов до начала активности
// Сканирует от самого щедрого tier'а вниз, первый подошедший порог
// выигрывает (сравнение включительное: ровно 72 часа - это tier "72+").
// Если ни один порог не подошёл (мало времени или активность уже
// началась), применяется последний tier
func (p Policy) selectTier(hoursUntilStart decimal.Decimal) domain.RefundTier {
	for _, tier := range p.Tiers[:len(p.Tiers)-1] {
		if hoursUntilStart.GreaterThanOrEqual(decimal.NewFromInt(int64(tier.MinHoursBefore))) {
			return tier
		}
	}
	return p.Tiers[len(p.Tiers)-1]
}
