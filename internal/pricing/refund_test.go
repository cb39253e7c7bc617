package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func startIn(d time.Duration) time.Time {
	return testNow.Add(d)
}

func TestQuoteCancellation_Tiers(t *testing.T) {
	total := decimal.NewFromInt(358)

	tests := []struct {
		name        string
		until       time.Duration
		wantPercent int
		wantFee     string
		wantRefund  string
	}{
		{"100 hours out - full refund, no fee", 100 * time.Hour, 100, "0.00", "358.00"},
		{"30 hours out - 75% minus 25 fee", 30 * time.Hour, 75, "25.00", "243.50"},
		{"15 hours out - 50% minus 25 fee", 15 * time.Hour, 50, "25.00", "154.00"},
		{"5 hours out - no refund, 50 fee", 5 * time.Hour, 0, "50.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := QuoteCancellation(startIn(tt.until), total, testNow)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPercent, quote.RefundPercent)
			assert.Equal(t, tt.wantFee, quote.CancellationFee.StringFixed(2))
			assert.Equal(t, tt.wantRefund, quote.RefundAmount.StringFixed(2))
		})
	}
}

func TestQuoteCancellation_BoundariesAreInclusive(t *testing.T) {
	total := decimal.NewFromInt(358)

	tests := []struct {
		name        string
		until       time.Duration
		wantPercent int
	}{
		{"exactly 72h takes the 100% tier", 72 * time.Hour, 100},
		{"just under 72h drops to 75%", 71*time.Hour + 59*time.Minute, 75},
		{"exactly 24h takes the 75% tier", 24 * time.Hour, 75},
		{"just under 24h drops to 50%", 23*time.Hour + 59*time.Minute, 50},
		{"exactly 12h takes the 50% tier", 12 * time.Hour, 50},
		{"just under 12h drops to 0%", 11*time.Hour + 59*time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := QuoteCancellation(startIn(tt.until), total, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercent, quote.RefundPercent)
		})
	}
}

func TestQuoteCancellation_AlreadyStarted(t *testing.T) {
	// Активность началась 3 часа назад: попадает в последний tier
	// так же, как "меньше 12 часов" - без ошибки и особых случаев
	quote, err := QuoteCancellation(startIn(-3*time.Hour), decimal.NewFromInt(358), testNow)
	require.NoError(t, err)

	assert.True(t, quote.HoursUntilStart.IsNegative())
	assert.Equal(t, 0, quote.RefundPercent)
	assert.Equal(t, "50.00", quote.CancellationFee.StringFixed(2))
	assert.Equal(t, "0.00", quote.RefundAmount.StringFixed(2))
}

func TestQuoteCancellation_FeeExceedsRefundClampsToZero(t *testing.T) {
	// total=40, 5 часов до начала: fee 50 больше суммы, возврат 0, не отрицательный
	quote, err := QuoteCancellation(startIn(5*time.Hour), decimal.NewFromInt(40), testNow)
	require.NoError(t, err)

	assert.Equal(t, "0.00", quote.RefundAmount.StringFixed(2))
	assert.False(t, quote.RefundAmount.IsNegative())
}

func TestQuoteCancellation_ZeroTotal(t *testing.T) {
	for _, until := range []time.Duration{100 * time.Hour, 30 * time.Hour, 5 * time.Hour} {
		quote, err := QuoteCancellation(startIn(until), decimal.Zero, testNow)
		require.NoError(t, err)
		assert.Equal(t, "0.00", quote.RefundAmount.StringFixed(2))
	}
}

func TestQuoteCancellation_RefundIsMonotonicInHours(t *testing.T) {
	total := decimal.NewFromInt(358)
	previous := decimal.NewFromInt(-1)

	// От уже начавшейся активности до 120 часов вперед с шагом 30 минут:
	// возврат не убывает с ростом времени до начала
	for minutes := -600; minutes <= 120*60; minutes += 30 {
		quote, err := QuoteCancellation(startIn(time.Duration(minutes)*time.Minute), total, testNow)
		require.NoError(t, err)

		assert.True(t, quote.RefundAmount.GreaterThanOrEqual(previous),
			"refund decreased at %d minutes: %s < %s", minutes, quote.RefundAmount, previous)
		previous = quote.RefundAmount
	}
}

func TestQuoteCancellation_Idempotent(t *testing.T) {
	start := startIn(30 * time.Hour)
	total := decimal.NewFromFloat(199.99)

	first, err := QuoteCancellation(start, total, testNow)
	require.NoError(t, err)
	second, err := QuoteCancellation(start, total, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuoteCancellation_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		total decimal.Decimal
		now   time.Time
	}{
		{"negative total", startIn(30 * time.Hour), decimal.NewFromInt(-1), testNow},
		{"zero start", time.Time{}, decimal.NewFromInt(100), testNow},
		{"zero now", startIn(30 * time.Hour), decimal.NewFromInt(100), time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := QuoteCancellation(tt.start, tt.total, tt.now)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPolicyValidate(t *testing.T) {
	valid := DefaultPolicy()
	assert.NoError(t, valid.Validate())

	empty := Policy{ModificationFee: decimal.NewFromInt(25)}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidPolicy)

	badOrder := DefaultPolicy()
	badOrder.Tiers[0].MinHoursBefore = 10 // 10 < следующего порога 24
	assert.ErrorIs(t, badOrder.Validate(), ErrInvalidPolicy)

	badPercent := DefaultPolicy()
	badPercent.Tiers[0].RefundPercent = 120
	assert.ErrorIs(t, badPercent.Validate(), ErrInvalidPolicy)
}
