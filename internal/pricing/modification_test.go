package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/types"
)

func testPriceTable() domain.PriceTable {
	return domain.PriceTable{
		domain.ParticipantAdult: decimal.NewFromInt(179),
		domain.ParticipantChild: decimal.NewFromInt(139),
	}
}

func snapshot(date time.Time, startTime string, adults, children, seniors int) Snapshot {
	return Snapshot{
		Date:      date,
		StartTime: types.TimeString(startTime),
		Participants: domain.Participants{
			Adults:   adults,
			Children: children,
			Seniors:  seniors,
		},
	}
}

var testDate = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

func TestQuoteModification_ReferenceScenario(t *testing.T) {
	// 2 взрослых -> 2 взрослых + 1 ребёнок при ценах adult=179, child=139
	original := snapshot(testDate, "10:00", 2, 0, 0)
	proposed := snapshot(testDate, "10:00", 2, 1, 0)

	quote, err := QuoteModification(original, proposed, testPriceTable())
	require.NoError(t, err)

	assert.Equal(t, "358.00", quote.OriginalPrice.StringFixed(2))
	assert.Equal(t, "497.00", quote.NewPrice.StringFixed(2))
	assert.Equal(t, "139.00", quote.PriceDifference.StringFixed(2))
	assert.Equal(t, "25.00", quote.ModificationFee.StringFixed(2))
	assert.Equal(t, "164.00", quote.AmountDue.StringFixed(2))
	assert.True(t, quote.HasChanges)
}

func TestQuoteModification_NoChanges(t *testing.T) {
	original := snapshot(testDate, "10:00", 2, 1, 0)
	proposed := snapshot(testDate, "10:00", 2, 1, 0)

	quote, err := QuoteModification(original, proposed, testPriceTable())
	require.NoError(t, err)

	assert.False(t, quote.HasChanges)
	assert.Equal(t, "0.00", quote.PriceDifference.StringFixed(2))
	// Fee входит в AmountDue безусловно - решение о том, брать ли его
	// при отсутствии изменений, принимает вызывающая сторона
	assert.Equal(t, "25.00", quote.AmountDue.StringFixed(2))
}

func TestQuoteModification_ChangeDetection(t *testing.T) {
	base := snapshot(testDate, "10:00", 2, 0, 0)

	tests := []struct {
		name     string
		proposed Snapshot
		want     bool
	}{
		{"date change only", snapshot(testDate.AddDate(0, 0, 1), "10:00", 2, 0, 0), true},
		{"time change only", snapshot(testDate, "13:00", 2, 0, 0), true},
		{"adults change only", snapshot(testDate, "10:00", 3, 0, 0), true},
		{"children 0 to 1", snapshot(testDate, "10:00", 2, 1, 0), true},
		{"identical", snapshot(testDate, "10:00", 2, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := QuoteModification(base, tt.proposed, testPriceTable())
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.HasChanges)
		})
	}
}

func TestQuoteModification_DowngradeYieldsNegativeAmountDue(t *testing.T) {
	// 2 взрослых -> 1 взрослый: diff -179, fee 25, итог -154 (возврат клиенту)
	original := snapshot(testDate, "10:00", 2, 0, 0)
	proposed := snapshot(testDate, "10:00", 1, 0, 0)

	quote, err := QuoteModification(original, proposed, testPriceTable())
	require.NoError(t, err)

	assert.Equal(t, "-179.00", quote.PriceDifference.StringFixed(2))
	assert.Equal(t, "-154.00", quote.AmountDue.StringFixed(2))
	assert.Equal(t, "154.00", quote.RefundDue().StringFixed(2))
	assert.True(t, quote.HasChanges)
}

func TestQuoteModification_FeeExceedsPriceDecrease(t *testing.T) {
	// Удешевление на 20 при fee 25: клиент всё равно должен 5
	// Сохранённое поведение референсной политики, не особый случай
	table := domain.PriceTable{
		domain.ParticipantAdult: decimal.NewFromInt(100),
		domain.ParticipantChild: decimal.NewFromInt(20),
	}

	original := snapshot(testDate, "10:00", 2, 1, 0)
	proposed := snapshot(testDate, "10:00", 2, 0, 0)

	quote, err := QuoteModification(original, proposed, table)
	require.NoError(t, err)

	assert.Equal(t, "-20.00", quote.PriceDifference.StringFixed(2))
	assert.Equal(t, "5.00", quote.AmountDue.StringFixed(2))
	assert.Equal(t, "0.00", quote.RefundDue().StringFixed(2))
}

func TestQuoteModification_MissingPriceTier(t *testing.T) {
	// В таблице нет цены для ребёнка, а в запросе 1 ребёнок
	table := domain.PriceTable{
		domain.ParticipantAdult: decimal.NewFromInt(179),
	}

	original := snapshot(testDate, "10:00", 2, 0, 0)
	proposed := snapshot(testDate, "10:00", 2, 1, 0)

	_, err := QuoteModification(original, proposed, table)
	assert.ErrorIs(t, err, ErrMissingPriceTier)
}

func TestQuoteModification_ZeroCountIgnoresMissingTier(t *testing.T) {
	// Нулевое количество не требует цены в таблице
	table := domain.PriceTable{
		domain.ParticipantAdult: decimal.NewFromInt(179),
	}

	original := snapshot(testDate, "10:00", 2, 0, 0)
	proposed := snapshot(testDate, "13:00", 2, 0, 0)

	quote, err := QuoteModification(original, proposed, table)
	require.NoError(t, err)
	assert.True(t, quote.HasChanges)
}

func TestQuoteModification_InvalidInput(t *testing.T) {
	valid := snapshot(testDate, "10:00", 2, 0, 0)

	t.Run("zero date", func(t *testing.T) {
		bad := valid
		bad.Date = time.Time{}
		_, err := QuoteModification(bad, valid, testPriceTable())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty start time", func(t *testing.T) {
		bad := valid
		bad.StartTime = ""
		_, err := QuoteModification(valid, bad, testPriceTable())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative participant count", func(t *testing.T) {
		bad := valid
		bad.Participants.Children = -1
		_, err := QuoteModification(valid, bad, testPriceTable())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPrice(t *testing.T) {
	table := domain.PriceTable{
		domain.ParticipantAdult:  decimal.NewFromInt(179),
		domain.ParticipantChild:  decimal.NewFromInt(139),
		domain.ParticipantSenior: decimal.NewFromFloat(149.50),
	}

	price, err := Price(domain.Participants{Adults: 2, Children: 1, Seniors: 2}, table)
	require.NoError(t, err)

	// 2*179 + 1*139 + 2*149.50 = 796.00
	assert.Equal(t, "796.00", price.StringFixed(2))

	price, err = Price(domain.Participants{}, table)
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}
